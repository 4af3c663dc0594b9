package files

import (
	"math/rand"
	"os"
	"strings"

	"github.com/pluqqy/pluqqy-todo/pkg/models"
)

const nameAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// RandomName builds a fresh task file name such as "new_a8Fq2.todo"
func RandomName(storage models.StorageSettings) string {
	var b strings.Builder
	b.WriteString(storage.NamePrefix)
	for i := 0; i < storage.NameLength; i++ {
		b.WriteByte(nameAlphabet[rand.Intn(len(nameAlphabet))])
	}
	b.WriteString(storage.Extension)
	return b.String()
}

// NewTaskFilePath returns a random file name that does not exist yet in the
// current directory. It gives up after a few attempts and returns the last name.
func NewTaskFilePath(storage models.StorageSettings) string {
	name := RandomName(storage)
	for attempt := 0; attempt < 8; attempt++ {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			return name
		}
		name = RandomName(storage)
	}
	return name
}
