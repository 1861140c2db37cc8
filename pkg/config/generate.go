package config

import (
	"bytes"

	"github.com/arthur-debert/classifiles/pkg/errors"
	"gopkg.in/yaml.v3"
)

const generatedHeader = `# classifiles configuration
#
# mime_info_db.root   directory of <mime-type>.xml glob records
# libmagic.db_file    compiled magic database used for deep inspection
# libmagic.used_for   sniffed types that deep inspection refines
`

// Render serializes cfg as a commented YAML document.
func Render(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return buf.Bytes(), nil
}
