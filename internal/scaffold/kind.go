package scaffold

import (
	"strings"

	"github.com/jrebirth-labs/jrforge/internal/javapkg"
)

// Kind is the category of a scaffolded artifact.
type Kind string

const (
	KindMV       Kind = "mv"
	KindMVC      Kind = "mvc"
	KindFXML     Kind = "fxml"
	KindCommand  Kind = "command"
	KindService  Kind = "service"
	KindResource Kind = "resource"

	// KindBean is generated alongside MV and MVC groups.
	KindBean Kind = "bean"
)

// Kinds lists the kinds users can request, in command order.
var Kinds = []Kind{KindMVC, KindMV, KindFXML, KindCommand, KindService, KindResource}

// role is one file emitted for a kind.
type role struct {
	name     string // "Model", "View", "Controller", or empty for single-file kinds
	suffix   string // appended to the type name
	ext      string
	template string
	resource bool // written under the resource root instead of the source root
}

// kindSpec is one row of the dispatch table.
type kindSpec struct {
	label      string // used in "The <label> package does not exist" lines
	suffix     string // package suffix appended to the top-level package
	perName    bool   // files live in a lower-cased sub-package named after the request
	companions []Kind
	roles      []role
	typeName   func(r *Request) string
}

func className(r *Request) string { return javapkg.ClassName(r.Name) }

var (
	modelRole      = role{name: "Model", suffix: "Model", ext: ".java", template: "mvc/model"}
	controllerRole = role{name: "Controller", suffix: "Controller", ext: ".java", template: "mvc/controller"}
)

var kinds = map[Kind]kindSpec{
	KindMV: {
		label:      "UI",
		suffix:     ".ui",
		perName:    true,
		companions: []Kind{KindBean},
		roles: []role{
			modelRole,
			{name: "View", suffix: "View", ext: ".java", template: "mv/view"},
		},
		typeName: className,
	},
	KindMVC: {
		label:      "UI",
		suffix:     ".ui",
		perName:    true,
		companions: []Kind{KindBean},
		roles: []role{
			modelRole,
			{name: "View", suffix: "View", ext: ".java", template: "mvc/view"},
			controllerRole,
		},
		typeName: className,
	},
	KindFXML: {
		label:   "FXML UI",
		suffix:  ".ui.fxml",
		perName: true,
		roles: []role{
			{name: "FXML", ext: ".fxml", template: "fxml/view", resource: true},
			{name: "Controller", suffix: "Controller", ext: ".java", template: "fxml/controller"},
		},
		typeName: className,
	},
	KindCommand: {
		label:    "command",
		suffix:   ".command",
		roles:    []role{{ext: ".java", template: "command/class"}},
		typeName: className,
	},
	KindService: {
		label:    "service",
		suffix:   ".service",
		roles:    []role{{ext: ".java", template: "service/class"}},
		typeName: func(r *Request) string { return javapkg.ServiceName(r.Name) },
	},
	KindResource: {
		label:    "resource",
		suffix:   ".resource",
		roles:    []role{{ext: ".java", template: "resource/class"}},
		typeName: func(r *Request) string { return ColorsTypeName(r.ProjectName) },
	},
	KindBean: {
		label:    "beans",
		suffix:   ".bean",
		roles:    []role{{ext: ".java", template: "bean/class"}},
		typeName: className,
	},
}

// PackageSuffix returns the package suffix of the kind, e.g. ".service".
func (k Kind) PackageSuffix() string {
	return kinds[k].suffix
}

// String returns the kind in upper case, as shown to users.
func (k Kind) String() string {
	return strings.ToUpper(string(k))
}

// ColorsTypeName returns the name of the colors interface of a project:
// "demo" becomes "DemoColors".
func ColorsTypeName(projectName string) string {
	return javapkg.TypeName(projectName) + "Colors"
}
