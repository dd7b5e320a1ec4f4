package writer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

const svgNS = "http://www.w3.org/2000/svg"

func renderSVG(bitmap [][]bool, scale int) (string, error) {
	h := len(bitmap)
	w := 0
	if h > 0 {
		w = len(bitmap[0])
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", svgNS)
	svg.CreateAttr("version", "1.1")
	svg.CreateAttr("width", strconv.Itoa(w*scale))
	svg.CreateAttr("height", strconv.Itoa(h*scale))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", w, h))
	svg.CreateAttr("stroke", "none")

	bg := svg.CreateElement("rect")
	bg.CreateAttr("width", "100%")
	bg.CreateAttr("height", "100%")
	bg.CreateAttr("fill", "#FFFFFF")

	path := svg.CreateElement("path")
	path.CreateAttr("d", modulePath(bitmap))

	doc.Indent(2)
	return doc.WriteToString()
}

func modulePath(bitmap [][]bool) string {
	var sb strings.Builder
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&sb, "M%d,%dh1v1h-1Z", x, y)
			}
		}
	}
	return sb.String()
}
