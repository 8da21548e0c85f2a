package request

import (
	"errors"
	"fmt"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Image references are either inline data URLs or external http(s) URLs, with
// no whitespace anywhere. The negative lookahead needs regexp2.
const imageRefPattern = `^(?!.*\s)(data:image/[a-zA-Z.+-]+;base64,|https?://).+$`

var (
	imageRefExp        = regexp2.MustCompile(imageRefPattern, regexp2.None)
	errInvalidImageRef = errors.New("image_ref must be a data URL or an http(s) URL")
)

type CreateItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageRef string  `json:"image_ref"`
}

func (req *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Price, validation.Required, validation.Min(0.01)),
		validation.Field(&req.ImageRef, validation.By(validateImageRef)),
	)
}

type UpdateItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageRef string  `json:"image_ref"`
}

func (req *UpdateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Price, validation.Required, validation.Min(0.01)),
		validation.Field(&req.ImageRef, validation.By(validateImageRef)),
	)
}

func validateImageRef(value interface{}) error {
	ref, ok := value.(string)
	if !ok {
		return fmt.Errorf("invalid image reference")
	}
	if ref == "" {
		return nil
	}

	match, err := imageRefExp.MatchString(ref)
	if err != nil || !match {
		return errInvalidImageRef
	}

	return nil
}
