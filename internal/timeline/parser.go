package timeline

import (
	"encoding/xml"
	"fmt"
	"os"
	"sort"
	"strconv"

	"toonscroll/internal/input"
)

// xmlTimeline matches the timeline schema:
//
//	<Timeline FPS="60" Duration="8">
//	  <Resize At="0" Width="1280" Height="800" PixelRatio="1"/>
//	  <Move At="0.5" X="640" Y="400"/>
//	  <Scroll At="1" Y="800"/>
//	</Timeline>
type xmlTimeline struct {
	XMLName  xml.Name `xml:"Timeline"`
	FPS      string   `xml:"FPS,attr"`
	Duration string   `xml:"Duration,attr"`
	Cues     []xmlCue `xml:",any"`
}

type xmlCue struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
}

func (c xmlCue) attr(name string) (float64, error) {
	for _, a := range c.Attrs {
		if a.Name.Local == name {
			v, err := strconv.ParseFloat(a.Value, 64)
			if err != nil {
				return 0, fmt.Errorf("%s %s=%q: %w", c.XMLName.Local, name, a.Value, err)
			}
			return v, nil
		}
	}
	return 0, fmt.Errorf("%s: missing %s", c.XMLName.Local, name)
}

// Parse reads a timeline XML file.
func Parse(path string) (*Timeline, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("timeline: read %s: %w", path, err)
	}
	tl, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("timeline: parse %s: %w", path, err)
	}
	return tl, nil
}

// Decode parses timeline XML. Unknown elements are an error.
func Decode(raw []byte) (*Timeline, error) {
	var doc xmlTimeline
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	tl := &Timeline{FPS: 60}
	if doc.FPS != "" {
		fps, err := strconv.Atoi(doc.FPS)
		if err != nil || fps <= 0 {
			return nil, fmt.Errorf("bad FPS %q", doc.FPS)
		}
		tl.FPS = fps
	}
	if doc.Duration != "" {
		d, err := strconv.ParseFloat(doc.Duration, 64)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("bad Duration %q", doc.Duration)
		}
		tl.Duration = d
	}

	for i, c := range doc.Cues {
		cue, err := decodeCue(c)
		if err != nil {
			return nil, fmt.Errorf("cue %d: %w", i, err)
		}
		tl.Cues = append(tl.Cues, cue)
	}
	sortCues(tl.Cues)

	// Without an explicit duration, run until the last cue plus the section
	// tween so it can finish.
	if doc.Duration == "" && len(tl.Cues) > 0 {
		tl.Duration = tl.Cues[len(tl.Cues)-1].At + 1.5
	}
	return tl, nil
}

func sortCues(cues []Cue) {
	sort.SliceStable(cues, func(i, j int) bool { return cues[i].At < cues[j].At })
}

func decodeCue(c xmlCue) (Cue, error) {
	at, err := c.attr("At")
	if err != nil {
		return Cue{}, err
	}
	if at < 0 {
		return Cue{}, fmt.Errorf("%s: negative At %g", c.XMLName.Local, at)
	}

	var ev input.Event
	switch c.XMLName.Local {
	case "Resize":
		w, err := c.attr("Width")
		if err != nil {
			return Cue{}, err
		}
		h, err := c.attr("Height")
		if err != nil {
			return Cue{}, err
		}
		pr, err := c.attr("PixelRatio")
		if err != nil {
			pr = 1
		}
		ev = input.Resize(w, h, pr)
	case "Scroll":
		y, err := c.attr("Y")
		if err != nil {
			return Cue{}, err
		}
		ev = input.Scroll(y)
	case "Move":
		x, err := c.attr("X")
		if err != nil {
			return Cue{}, err
		}
		y, err := c.attr("Y")
		if err != nil {
			return Cue{}, err
		}
		ev = input.PointerMove(x, y)
	default:
		return Cue{}, fmt.Errorf("unknown element <%s>", c.XMLName.Local)
	}
	return Cue{At: at, Event: ev}, nil
}

// Encode writes a timeline as indented XML.
func Encode(tl *Timeline) ([]byte, error) {
	doc := xmlTimeline{
		FPS:      strconv.Itoa(tl.FPS),
		Duration: formatFloat(tl.Duration),
	}
	for _, c := range tl.Cues {
		x := xmlCue{Attrs: []xml.Attr{attr("At", c.At)}}
		ev := c.Event
		switch ev.Kind {
		case input.KindResize:
			x.XMLName.Local = "Resize"
			x.Attrs = append(x.Attrs, attr("Width", ev.Width), attr("Height", ev.Height), attr("PixelRatio", ev.PixelRatio))
		case input.KindScroll:
			x.XMLName.Local = "Scroll"
			x.Attrs = append(x.Attrs, attr("Y", ev.ScrollY))
		case input.KindPointerMove:
			x.XMLName.Local = "Move"
			x.Attrs = append(x.Attrs, attr("X", ev.ClientX), attr("Y", ev.ClientY))
		default:
			return nil, fmt.Errorf("timeline: cannot encode %v", ev.Kind)
		}
		doc.Cues = append(doc.Cues, x)
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("timeline: encode: %w", err)
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

// Write saves a timeline to path.
func Write(path string, tl *Timeline) error {
	data, err := Encode(tl)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("timeline: write %s: %w", path, err)
	}
	return nil
}

func attr(name string, v float64) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: formatFloat(v)}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
