package types

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response is what a dispatched message returns. Data holds the encoded reply
// of create_denom and is empty otherwise.
type Response struct {
	Data       []byte      `json:"data,omitempty"`
	Attributes []Attribute `json:"attributes"`
}

func NewResponse(method string) *Response {
	return &Response{Attributes: []Attribute{{Key: "method", Value: method}}}
}

func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

func (r *Response) Attribute(key string) (string, bool) {
	for _, attr := range r.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}
