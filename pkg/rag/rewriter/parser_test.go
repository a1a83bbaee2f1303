package rewriter

import (
	"reflect"
	"testing"

	"ai-answer-engine-be/pkg/rag"
)

func TestParse(t *testing.T) {
	directMode := &rag.FocusModeConfig{
		DirectReply: true,
		Sentinels:   []string{"not_business_related"},
	}
	plainMode := &rag.FocusModeConfig{}

	tests := []struct {
		name string
		raw  string
		cfg  *rag.FocusModeConfig
		want Result
	}{
		{
			name: "tagged question becomes rewritten query",
			raw:  "<question>\nTesla main competitors market analysis\n</question>",
			cfg:  directMode,
			want: Result{Kind: KindRewritten, Query: "Tesla main competitors market analysis"},
		},
		{
			name: "untagged text in plain mode is a query",
			raw:  "Recent academic research quantum computing advances",
			cfg:  plainMode,
			want: Result{Kind: KindRewritten, Query: "Recent academic research quantum computing advances"},
		},
		{
			name: "untagged text in direct-reply mode short-circuits",
			raw:  "Hello! I'm doing great, thank you for asking. How can I assist you today?",
			cfg:  directMode,
			want: Result{Kind: KindShortCircuit, Answer: "Hello! I'm doing great, thank you for asking. How can I assist you today?"},
		},
		{
			name: "not_needed sentinel skips",
			raw:  "not_needed",
			cfg:  plainMode,
			want: Result{Kind: KindSkip, Reason: "not_needed"},
		},
		{
			name: "mode sentinel inside question tag skips",
			raw:  "<question>\nnot_business_related\n</question>",
			cfg:  directMode,
			want: Result{Kind: KindSkip, Reason: "not_business_related"},
		},
		{
			name: "backtick-wrapped sentinel still matches",
			raw:  "<question>`not_needed`</question>",
			cfg:  plainMode,
			want: Result{Kind: KindSkip, Reason: "not_needed"},
		},
		{
			name: "links block is extracted",
			raw:  "<question>\nsummarize\n</question>\n\n<links>\nhttps://example.com/report\nexample.org/page\n</links>",
			cfg:  directMode,
			want: Result{Kind: KindRewritten, Query: "summarize", Links: []string{"https://example.com/report", "example.org/page"}},
		},
		{
			name: "links without question tag stays a query in direct mode",
			raw:  "summarize this\n<links>\nhttps://example.com\n</links>",
			cfg:  directMode,
			want: Result{Kind: KindRewritten, Query: "summarize this\n<links>\nhttps://example.com\n</links>", Links: []string{"https://example.com"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw, tt.cfg)
			if got.Kind != tt.want.Kind {
				t.Fatalf("Kind = %v, want %v", got.Kind, tt.want.Kind)
			}
			if got.Query != tt.want.Query {
				t.Errorf("Query = %q, want %q", got.Query, tt.want.Query)
			}
			if got.Answer != tt.want.Answer {
				t.Errorf("Answer = %q, want %q", got.Answer, tt.want.Answer)
			}
			if got.Reason != tt.want.Reason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.want.Reason)
			}
			if !reflect.DeepEqual(got.Links, tt.want.Links) {
				t.Errorf("Links = %v, want %v", got.Links, tt.want.Links)
			}
		})
	}
}
