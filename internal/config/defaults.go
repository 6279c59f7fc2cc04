package config

// DefaultPath is where the CLI looks for its config file.
const DefaultPath = ".gifbot.yml"

// EnvPrefix prefixes the environment variables overriding config keys, so
// CHAT_BOT_TOKEN sets token.
const EnvPrefix = "CHAT_BOT_"

// erlichURLs are the built-in answers to "erlich".
var erlichURLs = []string{
	"http://giphy.com/gifs/silicon-valley-l3V0y6ZsNMt2icm3K",
	"http://giphy.com/gifs/siliconvalleyhbo-silicon-valley-hbo-erlich-3o7qE7QBNrErd5l64E",
	"http://giphy.com/gifs/3o6ozxMJHCtku2IXPW",
	"http://giphy.com/gifs/hbo-silicon-valley-sxsw-pied-piper-xTiTnvc9IlOffSwlPi",
	"http://giphy.com/gifs/siliconvalleyhbo-erlich-bachman-private-party-3o85xqZ37anBjdPzbO",
	"http://giphy.com/gifs/hit-beat-ptDRdwFkFVAkg",
	"http://giphy.com/gifs/siliconvalleyhbo-hbo-season-1-silicon-valley-26BkMadvsqSlAJdkY",
	"http://giphy.com/gifs/siliconvalleyhbo-xT1XGvcV4fa2eV4KS4",
	"http://giphy.com/gifs/silicon-valley-siliconvalleyedit-fatcd1PnHPTDW",
	"http://giphy.com/gifs/silicon-valley-siliconvalleyedit-OA68KNcxFFuAE",
	"http://giphy.com/gifs/silicon-valley-siliconvalleyedit-YzFJ7NL4zCgkE",
	"http://giphy.com/gifs/silicon-valley-YlYHnxsd7YvFC",
	"http://giphy.com/gifs/entertainment-describing-bachman-COgmzJQkqVE6k",
	"http://giphy.com/gifs/entertainment-describing-bachman-i5EIzDBOrhAjK",
	"http://giphy.com/gifs/entertainment-describing-bachman-111Y3FU5i7JDGM",
	"http://giphy.com/gifs/valley-fire-piKXr2hEDsO1G",
	"http://giphy.com/gifs/season-3-silicon-valley-new-trailer-3osxYbz61vsfo3BUCA",
	"http://giphy.com/gifs/siliconvalleyhbo-3o7qDHm7y5hWEnNxvi",
	"http://giphy.com/gifs/siliconvalleyhbo-l0K461PvDhmsgiAHm",
	"http://giphy.com/gifs/siliconvalleyhbo-3o6ozvnatQNgGlqrfO",
	"http://giphy.com/gifs/siliconvalleyhbo-26h0p7c6YkkvGlJxS",
	"http://giphy.com/gifs/siliconvalleyhbo-3o7qDY8ip5vxkOo0i4",
	"http://giphy.com/gifs/siliconvalleyhbo-hbo-silicon-valley-jack-barker-xT1XGNIqDOamdWPQ5i",
	"http://giphy.com/gifs/season-3-money-unicorn-3osxYamKD88c6pXdfO",
	"http://giphy.com/gifs/siliconvalleyhbo-26AHJhPfMObvwafKg",
}

// DefaultTriggers returns the triggers used when the config file names none.
func DefaultTriggers() []Trigger {
	return []Trigger{
		{Phrase: "erlich", Responses: append([]string(nil), erlichURLs...)},
	}
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		TokenFile: "token.txt",
		LogLevel:  "info",
		Triggers:  DefaultTriggers(),
	}
}
