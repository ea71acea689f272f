package render

import (
	"strings"
	"testing"

	"docnav/internal/docs"
)

func TestItemMarkdown(t *testing.T) {
	item := &docs.Item{
		ID:    "install",
		Title: "Installation",
		Tags:  []string{"setup", "beginner"},
		Content: []docs.ContentBlock{
			{Kind: docs.BlockHeading2, Content: "Prerequisites"},
			{Kind: docs.BlockDescription, Content: "You need a working shell."},
			{Kind: docs.BlockList, ListItems: []string{"curl", "tar"}},
			{Kind: docs.BlockCode, Content: "curl -LO https://example.com/pkg.tar.gz", ScriptLanguage: "bash"},
		},
	}

	out := ItemMarkdown(item)

	for _, want := range []string{
		"# Installation\n",
		"*setup, beginner*\n",
		"## Prerequisites\n",
		"You need a working shell.\n",
		"- curl\n- tar\n",
		"```bash\ncurl -LO https://example.com/pkg.tar.gz\n```\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Blocks render in declaration order.
	if strings.Index(out, "## Prerequisites") > strings.Index(out, "```bash") {
		t.Error("blocks rendered out of order")
	}
}

func TestItemMarkdown_NoTags(t *testing.T) {
	out := ItemMarkdown(&docs.Item{ID: "x", Title: "X"})
	if strings.Contains(out, "*") {
		t.Errorf("tag line rendered for untagged item:\n%s", out)
	}
}

func TestWriteBlockVariants(t *testing.T) {
	tests := []struct {
		name  string
		block docs.ContentBlock
		want  []string
	}{
		{
			name:  "quote",
			block: docs.ContentBlock{Kind: docs.BlockQuote, Content: "first\nsecond"},
			want:  []string{"> first\n> second\n"},
		},
		{
			name: "table",
			block: docs.ContentBlock{
				Kind:         docs.BlockTable,
				TableHeaders: []string{"Key", "Value"},
				TableRows:    [][]string{{"timeout", "30"}},
			},
			want: []string{"| Key | Value |\n", "| --- | --- |\n", "| timeout | 30 |\n"},
		},
		{
			name:  "image",
			block: docs.ContentBlock{Kind: docs.BlockImage, ImageSrc: "a.png", ImageAlt: "diagram"},
			want:  []string{"![diagram](a.png)\n"},
		},
		{
			name: "image compare",
			block: docs.ContentBlock{
				Kind:           docs.BlockImageCompare,
				ImageBeforeSrc: "before.png", ImageBeforeAlt: "before",
				ImageAfterSrc: "after.png", ImageAfterAlt: "after",
			},
			want: []string{"![before](before.png)\n![after](after.png)\n"},
		},
		{
			name: "image compare slider",
			block: docs.ContentBlock{
				Kind:           docs.BlockImageSlider,
				ImageBeforeSrc: "before.png", ImageBeforeAlt: "before",
				ImageAfterSrc: "after.png", ImageAfterAlt: "after",
			},
			want: []string{"![before](before.png)\n![after](after.png)\n"},
		},
		{
			name: "carousel",
			block: docs.ContentBlock{
				Kind: docs.BlockImageCarousel,
				CarouselImages: []docs.CarouselImage{
					{Src: "1.png", Alt: "one"},
					{Src: "2.png", Alt: "two"},
				},
			},
			want: []string{"![one](1.png)\n![two](2.png)\n"},
		},
		{
			name:  "audio",
			block: docs.ContentBlock{Kind: docs.BlockAudio, AudioSrc: "clip.mp3", AudioCaption: "intro"},
			want:  []string{"[audio: intro](clip.mp3)\n"},
		},
		{
			name:  "youtube",
			block: docs.ContentBlock{Kind: docs.BlockYoutube, YoutubeVideoID: "abc123"},
			want:  []string{"https://www.youtube.com/watch?v=abc123"},
		},
		{
			name:  "math",
			block: docs.ContentBlock{Kind: docs.BlockMath, Content: "x^2"},
			want:  []string{"$$\nx^2\n$$\n"},
		},
		{
			name: "chart",
			block: docs.ContentBlock{Kind: docs.BlockChart, ChartData: &docs.ChartData{
				Title:    "Throughput",
				Labels:   []string{"a", "b"},
				Datasets: []docs.ChartDataset{{Label: "reads", Data: []float64{1, 2, 3}}},
			}},
			want: []string{"**Throughput**\n", "- reads: 3 points\n"},
		},
		{
			name:  "graph",
			block: docs.ContentBlock{Kind: docs.BlockGraph, GraphExpressions: []string{"y=x", "y=2x"}},
			want:  []string{"`y=x`\n`y=2x`\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			writeBlock(&b, tt.block)
			for _, want := range tt.want {
				if !strings.Contains(b.String(), want) {
					t.Errorf("output missing %q:\n%s", want, b.String())
				}
			}
		})
	}
}

func TestWriteTable_NoHeaders(t *testing.T) {
	var b strings.Builder
	writeTable(&b, docs.ContentBlock{Kind: docs.BlockTable})
	if b.Len() != 0 {
		t.Errorf("headerless table rendered %q, want nothing", b.String())
	}
}
