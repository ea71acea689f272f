// Package render flattens an item's content blocks into markdown text for
// the CLI, the HTTP API, and the MCP resource surface. The core never calls
// it; blocks stay opaque there.
package render

import (
	"fmt"
	"strings"

	"docnav/internal/docs"
)

// ItemMarkdown renders one item as a markdown document: the title as an H1,
// then each block in declaration order.
func ItemMarkdown(item *docs.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", item.Title)
	if len(item.Tags) > 0 {
		fmt.Fprintf(&b, "*%s*\n\n", strings.Join(item.Tags, ", "))
	}
	for _, block := range item.Content {
		writeBlock(&b, block)
	}
	return b.String()
}

func writeBlock(b *strings.Builder, block docs.ContentBlock) {
	switch block.Kind {
	case docs.BlockHeading1:
		fmt.Fprintf(b, "# %s\n\n", block.Content)
	case docs.BlockHeading2:
		fmt.Fprintf(b, "## %s\n\n", block.Content)
	case docs.BlockHeading3:
		fmt.Fprintf(b, "### %s\n\n", block.Content)
	case docs.BlockDescription:
		fmt.Fprintf(b, "%s\n\n", block.Content)
	case docs.BlockList:
		for _, entry := range block.ListItems {
			fmt.Fprintf(b, "- %s\n", entry)
		}
		b.WriteString("\n")
	case docs.BlockQuote:
		for _, line := range strings.Split(block.Content, "\n") {
			fmt.Fprintf(b, "> %s\n", line)
		}
		b.WriteString("\n")
	case docs.BlockTable:
		writeTable(b, block)
	case docs.BlockImage:
		fmt.Fprintf(b, "![%s](%s)\n\n", block.ImageAlt, block.ImageSrc)
	case docs.BlockImageCompare, docs.BlockImageSlider:
		fmt.Fprintf(b, "![%s](%s)\n![%s](%s)\n\n",
			block.ImageBeforeAlt, block.ImageBeforeSrc,
			block.ImageAfterAlt, block.ImageAfterSrc)
	case docs.BlockImageCarousel:
		for _, img := range block.CarouselImages {
			fmt.Fprintf(b, "![%s](%s)\n", img.Alt, img.Src)
		}
		b.WriteString("\n")
	case docs.BlockAudio:
		fmt.Fprintf(b, "[audio: %s](%s)\n\n", block.AudioCaption, block.AudioSrc)
	case docs.BlockYoutube:
		fmt.Fprintf(b, "[youtube](https://www.youtube.com/watch?v=%s)\n\n", block.YoutubeVideoID)
	case docs.BlockCode:
		fmt.Fprintf(b, "```%s\n%s\n```\n\n", block.ScriptLanguage, block.Content)
	case docs.BlockMath:
		fmt.Fprintf(b, "$$\n%s\n$$\n\n", block.Content)
	case docs.BlockChart:
		writeChart(b, block.ChartData)
	case docs.BlockGraph:
		for _, expr := range block.GraphExpressions {
			fmt.Fprintf(b, "`%s`\n", expr)
		}
		b.WriteString("\n")
	}
}

func writeTable(b *strings.Builder, block docs.ContentBlock) {
	if len(block.TableHeaders) == 0 {
		return
	}
	fmt.Fprintf(b, "| %s |\n", strings.Join(block.TableHeaders, " | "))
	sep := make([]string, len(block.TableHeaders))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintf(b, "| %s |\n", strings.Join(sep, " | "))
	for _, row := range block.TableRows {
		fmt.Fprintf(b, "| %s |\n", strings.Join(row, " | "))
	}
	b.WriteString("\n")
}

func writeChart(b *strings.Builder, data *docs.ChartData) {
	if data == nil {
		return
	}
	if data.Title != "" {
		fmt.Fprintf(b, "**%s**\n\n", data.Title)
	}
	for _, ds := range data.Datasets {
		fmt.Fprintf(b, "- %s: %d points\n", ds.Label, len(ds.Data))
	}
	b.WriteString("\n")
}
