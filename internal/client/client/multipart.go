package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gigdesk/internal/client/models"
)

// Multipart part names understood by the API.
const (
	FieldThumbnail      = "gigThumbnail"
	FieldImages         = "gigImages"
	FieldImagesToDelete = "imagesToDelete"
	FieldProfilePic     = "profilePic"
	FieldImage          = "image"
)

// formWriter accumulates a multipart body in memory. The first error sticks
// and later writes become no-ops.
type formWriter struct {
	buf bytes.Buffer
	mw  *multipart.Writer
	err error
}

func newFormWriter() *formWriter {
	fw := &formWriter{}
	fw.mw = multipart.NewWriter(&fw.buf)
	return fw
}

func (fw *formWriter) field(name, value string) {
	if fw.err != nil {
		return
	}
	fw.err = fw.mw.WriteField(name, value)
}

func (fw *formWriter) jsonField(name string, v any) {
	if fw.err != nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		fw.err = fmt.Errorf("encode %s: %w", name, err)
		return
	}
	fw.err = fw.mw.WriteField(name, string(b))
}

func (fw *formWriter) file(name string, a Attachment) {
	if fw.err != nil || a == nil {
		return
	}
	rc, err := a.Open()
	if err != nil {
		fw.err = fmt.Errorf("open %s: %w", a.Name(), err)
		return
	}
	defer rc.Close()

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(name), escapeQuotes(a.Name())))
	h.Set("Content-Type", contentTypeOf(a.Name()))

	part, err := fw.mw.CreatePart(h)
	if err != nil {
		fw.err = err
		return
	}
	if _, err := io.Copy(part, rc); err != nil {
		fw.err = fmt.Errorf("read %s: %w", a.Name(), err)
	}
}

// finish closes the writer and returns the body and its content type.
func (fw *formWriter) finish() (*bytes.Buffer, string, error) {
	if fw.err != nil {
		return nil, "", fw.err
	}
	if err := fw.mw.Close(); err != nil {
		return nil, "", err
	}
	return &fw.buf, fw.mw.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func contentTypeOf(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// encodeGig writes a gig payload. withDeletes adds the imagesToDelete part,
// which only the update endpoint reads.
func encodeGig(p GigPayload, withDeletes bool) (*bytes.Buffer, string, error) {
	fw := newFormWriter()

	fw.field("title", p.Title)
	fw.field("desc", p.Desc)
	fw.field("category", string(p.Category))
	fw.jsonField("keywords", nonNil(p.Keywords))
	fw.jsonField("pricePlans", nonNil(p.PricePlans))
	fw.jsonField("faqs", nonNil(p.FAQs))
	fw.jsonField("requirements", nonNil(p.Requirements))
	if withDeletes {
		fw.jsonField(FieldImagesToDelete, nonNil(p.ImagesToDelete))
	}

	fw.file(FieldThumbnail, p.Thumbnail)
	for _, img := range p.Images {
		fw.file(FieldImages, img)
	}

	return fw.finish()
}

func encodeRegister(r RegisterRequest) (*bytes.Buffer, string, error) {
	fw := newFormWriter()

	fw.field("name", r.Name)
	fw.field("email", r.Email)
	fw.field("password", r.Password)
	fw.field("role", string(r.Role))
	if bio := strings.TrimSpace(r.Bio); bio != "" {
		fw.field("bio", bio)
	}
	if r.Role == models.RoleFreelancer && len(r.Skills) > 0 {
		fw.jsonField("skills", r.Skills)
	}
	fw.file(FieldProfilePic, r.ProfilePic)

	return fw.finish()
}

// nonNil makes nil slices encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
