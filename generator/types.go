package generator

// ErrorMarker prefixes the text of a failed generation when it is rendered as a post body.
const ErrorMarker = "API Error: "

// Selection is the topic/tone pair chosen for one day.
type Selection struct {
	Topic string
	Tone  string
}

// Result is the outcome of one generation request.
type Result struct {
	Content string
	Err     error
}

// OK reports whether the model returned a post.
func (r Result) OK() bool {
	return r.Err == nil
}

// Text returns the post body, or the error rendered with ErrorMarker so that
// a failed run still leaves a readable artifact behind.
func (r Result) Text() string {
	if r.Err != nil {
		return ErrorMarker + r.Err.Error()
	}
	return r.Content
}
