package main

// Options are the command line flags. The struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Persona  string `short:"p" long:"persona" default:"health" choice:"health" choice:"tech" choice:"history" description:"expert to answer the question"`
	Question string `short:"q" long:"question" description:"ask once, print the answer and exit instead of opening the form"`
	Config   string `short:"f" long:"config" description:"config YAML path (default ~/.config/expert/config.yaml)"`
	Secrets  string `long:"secrets" description:"secrets YAML path (default ~/.config/expert/secrets.yaml)"`
	Check    bool   `long:"check" description:"verify the API key with the provider and exit"`
	Debug    bool   `long:"debug" description:"debug logging; in one-shot mode also log to stderr"`
	Version  bool   `short:"v" long:"version" description:"print version and exit"`
}

func (o *Options) oneShot() bool {
	return o.Question != "" || o.Check
}
