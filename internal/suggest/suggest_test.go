package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"chapterTitle=", "chaptertitle"},
		{"XMLParser", "xmlparser"},
		{"getHTTPResponse", "gethttpresponse"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"get", "http", "response"}, Tokens("getHTTPResponse"))
	assert.Equal(t, []string{"book", "tags"}, Tokens("book_tags="))
	assert.Nil(t, Tokens(""))
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"chapter", "chaptre", 2},
		{"tag", "tags", 1},
		{"über", "uber", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("Title", "title"), 1e-9)
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 0.75, Similarity("tags", "tag"), 1e-9)
	assert.Less(t, Similarity("title", "chapters"), MinSimilarity)
}

func TestNames(t *testing.T) {
	ops := []string{"title", "title=", "tags", "tags=", "tag", "chapters", "chapters=", "chapter"}

	assert.Equal(t, []string{"chapter", "chapters"}, Names("chaptre", ops, 2))
	assert.Equal(t, []string{"tag", "tags", "tags="}, Names("tagz", ops, 3))
	assert.Equal(t, []string{"title", "title="}, Names("titl", ops, 0))
	assert.Empty(t, Names("zzzzzz", ops, 3))
	assert.Nil(t, Names("", ops, 3))
	assert.Nil(t, Names("x", nil, 3))
}
