package transcript

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Record
	}{
		{
			name:    "trailing record with empty body",
			content: "**2024-01-01\nHello world**2024-01-02\n",
			want:    []Record{{Date: "2024-01-01", Body: "Hello world"}},
		},
		{
			name:    "multiple records",
			content: "**2024-01-01\nfirst\nline two**  2024-01-02  \nsecond\n",
			want: []Record{
				{Date: "2024-01-01", Body: "first\nline two"},
				{Date: "2024-01-02", Body: "second\n"},
			},
		},
		{
			name:    "crlf date line",
			content: "**2024-03-01\r\nBody text",
			want:    []Record{{Date: "2024-03-01", Body: "Body text"}},
		},
		{
			name:    "record without line break is dropped",
			content: "**no newline here**2024-01-05\nkept",
			want:    []Record{{Date: "2024-01-05", Body: "kept"}},
		},
		{
			name:    "blank date is dropped",
			content: "**   \nbody without date**2024-01-06\nkept",
			want:    []Record{{Date: "2024-01-06", Body: "kept"}},
		},
		{
			name:    "whitespace body is dropped",
			content: "**2024-01-07\n   \n\t",
			want:    nil,
		},
		{
			name:    "content before first delimiter is a record",
			content: "2024-01-08\npreamble**2024-01-09\nnext",
			want: []Record{
				{Date: "2024-01-08", Body: "preamble"},
				{Date: "2024-01-09", Body: "next"},
			},
		},
		{
			name:    "empty content",
			content: "",
			want:    nil,
		},
		{
			name:    "only delimiters",
			content: "******",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.content, DefaultDelimiter)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecordsCustomDelimiter(t *testing.T) {
	got := Parse("##d1\nb1##d2\nb2", "##")
	want := []Record{{Date: "d1", Body: "b1"}, {Date: "d2", Body: "b2"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordsEmptyDelimiterUsesDefault(t *testing.T) {
	got := Parse("**d1\nb1", "")
	want := []Record{{Date: "d1", Body: "b1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordsStopsEarly(t *testing.T) {
	var got []string
	for rec := range Records("**a\n1**b\n2**c\n3", DefaultDelimiter) {
		got = append(got, rec.Date)
		if rec.Date == "b" {
			break
		}
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("Records() mismatch (-want +got):\n%s", diff)
	}
}
