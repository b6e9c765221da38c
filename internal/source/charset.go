package source

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

var (
	charsetMu sync.RWMutex
	charsets  = map[string]encoding.Encoding{
		// UTF-8 input is passed through byte for byte.
		"utf-8": encoding.Nop,
		"utf8":  encoding.Nop,
	}
)

// RegisterCharset adds an encoding under name, taking precedence over the
// IANA index. Names are case-insensitive.
func RegisterCharset(name string, enc encoding.Encoding) {
	charsetMu.Lock()
	defer charsetMu.Unlock()
	charsets[strings.ToLower(name)] = enc
}

func lookupCharset(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = defaultCharset
	}

	charsetMu.RLock()
	enc, ok := charsets[key]
	charsetMu.RUnlock()
	if ok {
		return enc, nil
	}

	enc, err := ianaindex.IANA.Encoding(key)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", name)
	}
	return enc, nil
}
