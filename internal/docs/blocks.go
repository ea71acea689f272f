package docs

import (
	"encoding/json"
	"fmt"
)

// BlockKind enumerates the closed set of content block variants.
type BlockKind string

const (
	BlockHeading1      BlockKind = "title-h1"
	BlockHeading2      BlockKind = "title-h2"
	BlockHeading3      BlockKind = "title-h3"
	BlockDescription   BlockKind = "description"
	BlockList          BlockKind = "list"
	BlockQuote         BlockKind = "quote"
	BlockTable         BlockKind = "table"
	BlockImage         BlockKind = "image"
	BlockImageCompare  BlockKind = "image-compare"
	BlockImageSlider   BlockKind = "image-compare-slider"
	BlockImageCarousel BlockKind = "image-carousel"
	BlockAudio         BlockKind = "audio"
	BlockYoutube       BlockKind = "youtube"
	BlockCode          BlockKind = "code"
	BlockMath          BlockKind = "math"
	BlockChart         BlockKind = "chart"
	BlockGraph         BlockKind = "graph"
)

// Valid reports whether k is a known block kind.
func (k BlockKind) Valid() bool {
	switch k {
	case BlockHeading1, BlockHeading2, BlockHeading3, BlockDescription,
		BlockList, BlockQuote, BlockTable, BlockImage, BlockImageCompare,
		BlockImageSlider, BlockImageCarousel, BlockAudio, BlockYoutube,
		BlockCode, BlockMath, BlockChart, BlockGraph:
		return true
	}
	return false
}

type CarouselImage struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	BorderColor     string    `json:"borderColor,omitempty"`
}

type ChartData struct {
	Title    string         `json:"title,omitempty"`
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ContentBlock is one tagged unit of renderable content. Kind selects the
// variant; only the fields relevant to that kind are populated. The core
// treats blocks as opaque payloads except for text extraction during search.
type ContentBlock struct {
	Kind BlockKind

	// Textual kinds (headings, description, quote, code, math)
	Content string

	ListItems []string

	TableHeaders []string
	TableRows    [][]string

	ImageSrc string
	ImageAlt string

	ImageBeforeSrc string
	ImageBeforeAlt string
	ImageAfterSrc  string
	ImageAfterAlt  string

	CarouselImages []CarouselImage

	AudioSrc      string
	AudioCaption  string
	AudioMimeType string

	YoutubeVideoID string

	ScriptName     string
	ScriptLanguage string

	ChartData *ChartData

	GraphExpressions []string
}

// blockJSON mirrors the wire shape: a "type" tag plus the union of every
// variant's fields.
type blockJSON struct {
	Type BlockKind `json:"type"`

	Content string `json:"content,omitempty"`

	ListItems []string `json:"listItems,omitempty"`

	TableHeaders []string   `json:"tableHeaders,omitempty"`
	TableRows    [][]string `json:"tableRows,omitempty"`

	ImageSrc string `json:"imageSrc,omitempty"`
	ImageAlt string `json:"imageAlt,omitempty"`

	ImageBeforeSrc string `json:"imageBeforeSrc,omitempty"`
	ImageBeforeAlt string `json:"imageBeforeAlt,omitempty"`
	ImageAfterSrc  string `json:"imageAfterSrc,omitempty"`
	ImageAfterAlt  string `json:"imageAfterAlt,omitempty"`

	CarouselImages []CarouselImage `json:"carouselImages,omitempty"`

	AudioSrc      string `json:"audioSrc,omitempty"`
	AudioCaption  string `json:"audioCaption,omitempty"`
	AudioMimeType string `json:"audioMimeType,omitempty"`

	YoutubeVideoID string `json:"youtubeVideoId,omitempty"`

	ScriptName     string `json:"scriptName,omitempty"`
	ScriptLanguage string `json:"scriptLanguage,omitempty"`

	ChartData *ChartData `json:"chartData,omitempty"`

	GraphExpressions []string `json:"graphExpressions,omitempty"`
}

func (b *ContentBlock) UnmarshalJSON(data []byte) error {
	var raw blockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !raw.Type.Valid() {
		return fmt.Errorf("unknown content block type %q", raw.Type)
	}

	*b = ContentBlock{
		Kind:             raw.Type,
		Content:          raw.Content,
		ListItems:        raw.ListItems,
		TableHeaders:     raw.TableHeaders,
		TableRows:        raw.TableRows,
		ImageSrc:         raw.ImageSrc,
		ImageAlt:         raw.ImageAlt,
		ImageBeforeSrc:   raw.ImageBeforeSrc,
		ImageBeforeAlt:   raw.ImageBeforeAlt,
		ImageAfterSrc:    raw.ImageAfterSrc,
		ImageAfterAlt:    raw.ImageAfterAlt,
		CarouselImages:   raw.CarouselImages,
		AudioSrc:         raw.AudioSrc,
		AudioCaption:     raw.AudioCaption,
		AudioMimeType:    raw.AudioMimeType,
		YoutubeVideoID:   raw.YoutubeVideoID,
		ScriptName:       raw.ScriptName,
		ScriptLanguage:   raw.ScriptLanguage,
		ChartData:        raw.ChartData,
		GraphExpressions: raw.GraphExpressions,
	}
	return nil
}

func (b ContentBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(blockJSON{
		Type:             b.Kind,
		Content:          b.Content,
		ListItems:        b.ListItems,
		TableHeaders:     b.TableHeaders,
		TableRows:        b.TableRows,
		ImageSrc:         b.ImageSrc,
		ImageAlt:         b.ImageAlt,
		ImageBeforeSrc:   b.ImageBeforeSrc,
		ImageBeforeAlt:   b.ImageBeforeAlt,
		ImageAfterSrc:    b.ImageAfterSrc,
		ImageAfterAlt:    b.ImageAfterAlt,
		CarouselImages:   b.CarouselImages,
		AudioSrc:         b.AudioSrc,
		AudioCaption:     b.AudioCaption,
		AudioMimeType:    b.AudioMimeType,
		YoutubeVideoID:   b.YoutubeVideoID,
		ScriptName:       b.ScriptName,
		ScriptLanguage:   b.ScriptLanguage,
		ChartData:        b.ChartData,
		GraphExpressions: b.GraphExpressions,
	})
}
