package screensaver

type CommandType string

const (
	CommandStop    CommandType = "stop"
	CommandRecolor CommandType = "recolor"
)

type Command struct {
	Type CommandType `json:"type"`
}
