package format

import (
	"encoding/json"
	"strconv"
)

type jsonFormatter struct{}

func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (j *jsonFormatter) Sequence(terms []int64) string {
	if terms == nil {
		terms = []int64{}
	}
	// Marshalling a slice of int64 cannot fail.
	data, _ := json.Marshal(terms)

	return string(data)
}

func (j *jsonFormatter) Term(value *int64) string {
	if value == nil {
		return "null"
	}
	return strconv.FormatInt(*value, 10)
}
