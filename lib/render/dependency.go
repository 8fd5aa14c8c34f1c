package render

import (
	"bytes"
	"fmt"
	"html"
	"sort"

	svg "github.com/ajstarks/svgo"
	"github.com/google/uuid"
	"gitlab.mdcatapult.io/informatics/software-engineering/grammar-analyzer/lib/nlp"
)

// Renderer turns a parsed sentence into markup.
type Renderer interface {
	Render(doc *nlp.Doc) (string, error)
}

type Options struct {
	Compact     bool
	Color       string
	Background  string `mapstructure:"bg"`
	Font        string
	FineGrained bool `mapstructure:"fine_grained"`
	Language    string
}

// Dependency draws displaCy style dependency trees: the words along a baseline
// with their part of speech underneath, and one labelled arc per dependency,
// pointing from the head to the dependant.
type Dependency struct {
	Options

	wordSpacing  int
	arrowSpacing int
	arrowWidth   int
	arrowStroke  int
	distance     int
	offsetX      int

	// newID returns the id prefix of a rendered svg; arcs reference their paths by id.
	newID func() string
}

type word struct {
	text string
	tag  string
}

type arc struct {
	start int
	end   int
	label string
	dir   string
}

// arcKey identifies arcs drawn at the same place whatever their direction.
type arcKey struct {
	start int
	end   int
	label string
}

func (a arc) key() arcKey {
	return arcKey{start: a.start, end: a.end, label: a.label}
}

var _ Renderer = (*Dependency)(nil)

func NewDependency(opts Options) *Dependency {
	d := &Dependency{
		Options:     opts,
		wordSpacing: 45,
		arrowStroke: 2,
		offsetX:     50,
		newID:       func() string { return uuid.New().String()[:8] },
	}
	if d.Color == "" {
		d.Color = "#000000"
	}
	if d.Background == "" {
		d.Background = "#ffffff"
	}
	if d.Font == "" {
		d.Font = "Arial"
	}
	if d.Compact {
		d.arrowSpacing, d.arrowWidth, d.distance = 12, 6, 150
	} else {
		d.arrowSpacing, d.arrowWidth, d.distance = 20, 10, 175
	}
	return d
}

func (d *Dependency) Render(doc *nlp.Doc) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("render: no document")
	}
	words, arcs := d.parse(doc)
	levels := arcLevels(arcs)
	highestLevel := 0
	for _, level := range levels {
		if level > highestLevel {
			highestLevel = level
		}
	}

	offsetY := d.distance/2*highestLevel + d.arrowStroke
	width := d.offsetX + len(words)*d.distance
	height := offsetY + 3*d.wordSpacing
	id := d.newID()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" xml:lang="%s" id="%s" class="displacy" width="%d" height="%d" direction="ltr" style="max-width: none; height: %dpx; color: %s; background: %s; font-family: %s; direction: ltr">`+"\n",
		html.EscapeString(d.language()), id, width, height,
		height, html.EscapeString(d.Color), html.EscapeString(d.Background), html.EscapeString(d.Font))
	canvas := svg.New(&buf)

	for i, w := range words {
		x := d.offsetX + i*d.distance
		y := offsetY + d.wordSpacing
		canvas.Text(x, y, w.text, `class="displacy-word"`, `fill="currentColor"`, `text-anchor="middle"`)
		canvas.Text(x, y+d.wordSpacing/2+4, w.tag, `class="displacy-tag"`, `fill="currentColor"`, `text-anchor="middle"`)
	}

	for i, a := range arcs {
		level := levels[a.key()]
		xStart := d.offsetX + a.start*d.distance + d.arrowSpacing
		y := offsetY
		xEnd := d.offsetX + a.end*d.distance - d.arrowSpacing*(highestLevel-level)/4
		yCurve := offsetY - level*d.distance/2
		if d.Compact {
			yCurve = offsetY - level*d.distance/6
		}
		if yCurve == 0 && highestLevel > 5 {
			yCurve = -d.distance
		}
		pathID := fmt.Sprintf("arrow-%s-%d", id, i)

		canvas.Group(`class="displacy-arrow"`)
		canvas.Path(d.arcPath(xStart, y, yCurve, xEnd),
			`class="displacy-arc"`,
			fmt.Sprintf(`id="%s"`, pathID),
			fmt.Sprintf(`stroke-width="%dpx"`, d.arrowStroke),
			`fill="none"`,
			`stroke="currentColor"`,
		)
		canvas.Textpath(a.label, "#"+pathID,
			`class="displacy-label"`,
			`startOffset="50%"`,
			`side="left"`,
			`fill="currentColor"`,
			`text-anchor="middle"`,
		)
		canvas.Path(d.arrowhead(a.dir, xStart, y, xEnd), `class="displacy-arrowhead"`, `fill="currentColor"`)
		canvas.Gend()
	}

	canvas.End()
	return buf.String(), nil
}

func (d *Dependency) language() string {
	if d.Language == "" {
		return "it"
	}
	return d.Language
}

// parse lays out the words of doc and the arcs between them. The root has no arc.
func (d *Dependency) parse(doc *nlp.Doc) ([]word, []arc) {
	words := make([]word, len(doc.Tokens))
	var arcs []arc
	for i, token := range doc.Tokens {
		tag := token.Pos
		if d.FineGrained && token.Tag != "" {
			tag = token.Tag
		}
		words[i] = word{text: token.Text, tag: tag}

		if token.Head == i || token.Dep == "ROOT" {
			continue
		}
		if i < token.Head {
			arcs = append(arcs, arc{start: i, end: token.Head, label: token.Dep, dir: "left"})
		} else {
			arcs = append(arcs, arc{start: token.Head, end: i, label: token.Dep, dir: "right"})
		}
	}
	return words, arcs
}

// arcLevels assigns each arc the height at which it is drawn. Shorter arcs are
// placed first; an arc sits one level above the highest arc it spans.
func arcLevels(arcs []arc) map[arcKey]int {
	unique := make([]arcKey, 0, len(arcs))
	seen := make(map[arcKey]struct{}, len(arcs))
	length := 0
	for _, a := range arcs {
		key := a.key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, key)
		if a.end > length {
			length = a.end
		}
	}
	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].end-unique[i].start < unique[j].end-unique[j].start
	})

	maxLevel := make([]int, length)
	levels := make(map[arcKey]int, len(unique))
	for _, a := range unique {
		level := 0
		for i := a.start; i < a.end; i++ {
			if maxLevel[i] > level {
				level = maxLevel[i]
			}
		}
		level++
		for i := a.start; i < a.end; i++ {
			maxLevel[i] = level
		}
		levels[a] = level
	}
	return levels
}

func (d *Dependency) arcPath(xStart, y, yCurve, xEnd int) string {
	if d.Compact {
		return fmt.Sprintf("M%d,%d %d,%d %d,%d %d,%d", xStart, y, xStart, yCurve, xEnd, yCurve, xEnd, y)
	}
	return fmt.Sprintf("M%d,%d C%d,%d %d,%d %d,%d", xStart, y, xStart, yCurve, xEnd, yCurve, xEnd, y)
}

func (d *Dependency) arrowhead(dir string, x, y, end int) string {
	var p1, p2, p3 int
	if dir == "left" {
		p1, p2, p3 = x, x-d.arrowWidth+2, x+d.arrowWidth-2
	} else {
		p1, p2, p3 = end, end+d.arrowWidth-2, end-d.arrowWidth+2
	}
	return fmt.Sprintf("M%d,%d L%d,%d %d,%d", p1, y+2, p2, y-d.arrowWidth, p3, y-d.arrowWidth)
}
