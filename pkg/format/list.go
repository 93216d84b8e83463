package format

import (
	"strconv"
	"strings"
)

const none = "None"

type listFormatter struct{}

// NewList returns a formatter printing bracketed, comma separated lists.
func NewList() Formatter {
	return &listFormatter{}
}

func (l *listFormatter) Sequence(terms []int64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, t := range terms {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(t, 10))
	}
	sb.WriteByte(']')

	return sb.String()
}

func (l *listFormatter) Term(value *int64) string {
	if value == nil {
		return none
	}
	return strconv.FormatInt(*value, 10)
}
