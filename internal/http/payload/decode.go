package payload

import (
	"fmt"
	"net/http"

	"github.com/gorilla/schema"
)

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.SetAliasTag("form")
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

// DecodeForm fills object from an urlencoded form body.
func DecodeForm(r *http.Request, object any) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parse form: %w", err)
	}

	if err := formDecoder.Decode(object, r.PostForm); err != nil {
		return fmt.Errorf("decoding form payload: %w", err)
	}

	return nil
}
