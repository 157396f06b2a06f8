package persona

// ID identifies one of the built-in expert personas
type ID string

const (
	Health  ID = "health"
	Tech    ID = "tech"
	History ID = "history"
)

// FallbackInstruction is used for identifiers outside the registry
const FallbackInstruction = "You are a helpful assistant."

// Persona is a named instruction profile for the model
type Persona struct {
	ID          ID
	Name        string
	Description string
	Instruction string
}

// All lists the personas in display order. The first one is the default.
var All = []Persona{
	{
		ID:          Health,
		Name:        "Health & Medical Expert",
		Description: "Evidence-based answers on health and medicine",
		Instruction: "You are a world-renowned health and medical expert. Based on the latest research, " +
			"answer questions about health and medicine in a professional yet easy-to-understand way.",
	},
	{
		ID:          Tech,
		Name:        "IT & Technology Expert",
		Description: "Tech trends, programming and AI explained",
		Instruction: "You are a cutting-edge IT and technology expert. Explain complex technology trends, " +
			"programming and AI topics so that even beginners can understand them.",
	},
	{
		ID:          History,
		Name:        "History & Culture Expert",
		Description: "Historical background, culture and the arts",
		Instruction: "You are an internationally acclaimed history and culture expert. Answer questions about " +
			"historical background, cultural significance and the arts with deep insight and engaging storytelling.",
	},
}

// Default returns the persona preselected in the form
func Default() Persona {
	return All[0]
}

// Get returns the persona with the given id, or nil
func Get(id string) *Persona {
	for _, p := range All {
		if string(p.ID) == id {
			return &p
		}
	}
	return nil
}

// Resolve returns the instruction for id. Unknown ids get FallbackInstruction.
func Resolve(id string) string {
	if p := Get(id); p != nil {
		return p.Instruction
	}
	return FallbackInstruction
}

// IDs returns the persona identifiers in display order
func IDs() []string {
	ids := make([]string, 0, len(All))
	for _, p := range All {
		ids = append(ids, string(p.ID))
	}
	return ids
}
