package writer

import (
	"github.com/ukaji3/okrsheet-go/pkg/okrsheet/models"
	"github.com/xuri/excelize/v2"
)

var borderSides = []string{"left", "right", "top", "bottom"}

// styleCache creates each distinct StyleSpec once per file.
type styleCache struct {
	file *excelize.File
	ids  map[models.StyleSpec]int
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{file: f, ids: make(map[models.StyleSpec]int)}
}

func (c *styleCache) id(s models.StyleSpec) (int, error) {
	if id, ok := c.ids[s]; ok {
		return id, nil
	}
	id, err := c.file.NewStyle(toExcelize(s))
	if err != nil {
		return 0, err
	}
	c.ids[s] = id
	return id, nil
}

// toExcelize converts a StyleSpec to an excelize style definition.
func toExcelize(s models.StyleSpec) *excelize.Style {
	style := &excelize.Style{
		Font: &excelize.Font{
			Family: s.Font.Family,
			Size:   s.Font.Size,
			Bold:   s.Font.Bold,
			Color:  s.Font.Color,
		},
		Alignment: &excelize.Alignment{
			Horizontal: s.Alignment.Horizontal,
			Vertical:   s.Alignment.Vertical,
			WrapText:   s.Alignment.Wrap,
		},
	}
	if s.Fill != "" {
		style.Fill = excelize.Fill{Type: "pattern", Color: []string{s.Fill}, Pattern: 1}
	}
	if s.Border.Style != 0 {
		for _, side := range borderSides {
			style.Border = append(style.Border, excelize.Border{Type: side, Color: s.Border.Color, Style: s.Border.Style})
		}
	}
	if s.NumFmt != "" {
		numFmt := s.NumFmt
		style.CustomNumFmt = &numFmt
	}
	return style
}
