package collada

import "encoding/xml"

// xmlCollada matches the parts of a COLLADA 1.4 document used for skeletal animation.
type xmlCollada struct {
	Asset        xmlAsset            `xml:"asset"`
	Animations   []xmlLibAnimations  `xml:"library_animations"`
	VisualScenes []xmlLibVisualScene `xml:"library_visual_scenes"`
	Scene        xmlScene            `xml:"scene"`
}

type xmlAsset struct {
	UpAxis string `xml:"up_axis"`
	Unit   struct {
		Name  string  `xml:"name,attr"`
		Meter float64 `xml:"meter,attr"`
	} `xml:"unit"`
}

type xmlLibAnimations struct {
	Animations []xmlAnimation `xml:"animation"`
}

type xmlAnimation struct {
	ID         string         `xml:"id,attr"`
	Name       string         `xml:"name,attr"`
	Sources    []xmlSource    `xml:"source"`
	Samplers   []xmlSampler   `xml:"sampler"`
	Channels   []xmlChannel   `xml:"channel"`
	Animations []xmlAnimation `xml:"animation"`
}

type xmlSource struct {
	ID         string      `xml:"id,attr"`
	FloatArray *xmlArray   `xml:"float_array"`
	NameArray  *xmlArray   `xml:"Name_array"`
	Accessor   xmlAccessor `xml:"technique_common>accessor"`
}

type xmlArray struct {
	ID    string `xml:"id,attr"`
	Count int    `xml:"count,attr"`
	Data  string `xml:",chardata"`
}

type xmlAccessor struct {
	Source string     `xml:"source,attr"`
	Count  int        `xml:"count,attr"`
	Stride int        `xml:"stride,attr"`
	Params []xmlParam `xml:"param"`
}

type xmlParam struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
}

type xmlSampler struct {
	ID     string     `xml:"id,attr"`
	Inputs []xmlInput `xml:"input"`
}

type xmlInput struct {
	Semantic string `xml:"semantic,attr"`
	Source   string `xml:"source,attr"`
}

type xmlChannel struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

type xmlLibVisualScene struct {
	Scenes []xmlVisualScene `xml:"visual_scene"`
}

type xmlVisualScene struct {
	ID    string    `xml:"id,attr"`
	Name  string    `xml:"name,attr"`
	Nodes []xmlNode `xml:"node"`
}

type xmlScene struct {
	Instance struct {
		URL string `xml:"url,attr"`
	} `xml:"instance_visual_scene"`
}

type xmlNode struct {
	ID         string         `xml:"id,attr"`
	Name       string         `xml:"name,attr"`
	SID        string         `xml:"sid,attr"`
	Type       string         `xml:"type,attr"`
	Transforms []xmlTransform `xml:",any"`
	Nodes      []xmlNode      `xml:"node"`
}

// xmlTransform is any non-node child; only matrix, translate, rotate and scale
// affect the bind pose.
type xmlTransform struct {
	XMLName xml.Name
	SID     string `xml:"sid,attr"`
	Data    string `xml:",chardata"`
}
