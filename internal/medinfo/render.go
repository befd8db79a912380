package medinfo

import "strings"

type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockBold      BlockKind = "bold"
	BlockBullet    BlockKind = "bullet"
	BlockParagraph BlockKind = "paragraph"
)

type Block struct {
	Kind BlockKind `json:"kind"`
	Text string    `json:"text"`
}

// Parse разбивает ответ на строки и размечает их для отображения.
// Пустые строки пропускаются.
func Parse(text string) []Block {
	blocks := make([]Block, 0)
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "###"):
			blocks = append(blocks, Block{Kind: BlockHeading, Text: strings.TrimSpace(strings.TrimLeft(line, "#"))})
		case strings.HasPrefix(line, "**"):
			blocks = append(blocks, Block{Kind: BlockBold, Text: strings.TrimSpace(strings.ReplaceAll(line, "**", ""))})
		case strings.HasPrefix(line, "* "):
			blocks = append(blocks, Block{Kind: BlockBullet, Text: strings.TrimSpace(strings.TrimPrefix(line, "* "))})
		default:
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: strings.TrimSpace(line)})
		}
	}
	return blocks
}
