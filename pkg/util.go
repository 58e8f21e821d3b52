package pkg

import (
	"log"
	"os"
	"regexp"

	petname "github.com/dustinkirkland/golang-petname"
)

const MaxNicknameLength = 16

var nickRegexp = regexp.MustCompile(`[^a-zA-Z0-9_\-!@#$%^&*+=,./]+`)

// InitLog sends the standard logger to dest. The terminal belongs to the UI,
// so nothing may be logged to stderr once it starts.
func InitLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}

// Nickname strips characters that are unsafe to display and truncates nick.
// An empty result is replaced by a random name.
func Nickname(nick string) string {
	nick = nickRegexp.ReplaceAllString(nick, "")
	if len(nick) > MaxNicknameLength {
		nick = nick[:MaxNicknameLength]
	} else if nick == "" {
		nick = RandomNickname()
	}

	return nick
}

func RandomNickname() string {
	return petname.Generate(2, "-")
}
