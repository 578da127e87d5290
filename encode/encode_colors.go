package encode

import (
	"strings"

	"github.com/fatih/color"
)

// Element classifies a span of canonical output for coloring.
type Element int

const (
	DirectiveKey Element = iota
	SetName
	PlaceToken
	Address
	TypeToken
	Value
	CommentText
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Element]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Element]func(string, ...any) string{},
	}
	colors.Map[DirectiveKey] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[SetName] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[PlaceToken] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Address] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[TypeToken] = color.CyanString
	colors.Map[Value] = color.RGB(198, 198, 46).SprintfFunc()
	colors.Map[CommentText] = color.BlueString
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(el Element, s string) string {
	return c.Get(el)(s)
}

func (c *Colors) Get(el Element) func(string, ...any) string {
	f := c.Map[el]
	if f == nil {
		return c.Default
	}
	return f
}
