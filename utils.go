package swatchgen

import (
	"fmt"
	"go/token"
	"os"
	"path"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
)

const DefaultFilePerm = 0644

const DefaultFolderPerm = 0755

var defaultDecoder = charmap.Windows1252.NewDecoder()

// fingerprintSpace namespaces source fingerprints.
var fingerprintSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/brandquad/swatchgen"))

// decodeLine returns s unchanged when it is valid UTF-8 and decodes it as
// Windows-1252 otherwise.
func decodeLine(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	out, err := defaultDecoder.String(s)
	if err != nil {
		return s
	}
	return out
}

// Fingerprint is a name-based UUID of the survey bytes. Equal input gives an equal fingerprint.
func Fingerprint(data []byte) string {
	return uuid.NewSHA1(fingerprintSpace, data).String()
}

// writeFile creates the parent folder and writes data.
func writeFile(filepath string, data []byte) error {
	dir, _ := path.Split(filepath)
	if dir != "" {
		if err := os.MkdirAll(dir, DefaultFolderPerm); err != nil {
			return err
		}
	}
	return os.WriteFile(filepath, data, DefaultFilePerm)
}

// Validate checks the names that end up in generated source.
func (c Config) Validate() error {
	c = c.withDefaults()
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a valid identifier", c.Package)
	}
	if !token.IsIdentifier(c.TypeName) {
		return fmt.Errorf("type name %q is not a valid identifier", c.TypeName)
	}
	return nil
}
