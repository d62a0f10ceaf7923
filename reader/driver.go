package reader

import (
	"encoding/xml"
	"io"

	"github.com/muktihari/xmltokenizer"
	"github.com/pkg/errors"

	"github.com/osgeolabs/gmlreader/gmlerr"
	"github.com/osgeolabs/gmlreader/xmlutil"
)

// tokenDriver adapts one tokenizer backend to the handler. ParseNext
// delivers the events of a single token and returns io.EOF once the
// input is exhausted.
type tokenDriver interface {
	Setup(src io.Reader, h *handler)
	ParseNext() error
	Close() error
}

// decoderDriver drives the handler from an encoding/xml token stream.
type decoderDriver struct {
	dec *xml.Decoder
	h   *handler
}

func (d *decoderDriver) Setup(src io.Reader, h *handler) {
	d.dec = xml.NewDecoder(src)
	d.h = h
}

func (d *decoderDriver) ParseNext() error {
	tok, err := d.dec.Token()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		if serr, ok := err.(*xml.SyntaxError); ok {
			_, col := d.dec.InputPos()
			return errors.WithStack(gmlerr.ParseFailed(
				gmlerr.WithMessage(serr.Msg),
				gmlerr.WithPosition(serr.Line, col)))
		}
		return errors.Wrap(err, "reading token")
	}
	switch t := tok.(type) {
	case xml.StartElement:
		d.h.startElement(t.Name, t.Attr)
	case xml.EndElement:
		d.h.endElement(t.Name)
	case xml.CharData:
		d.h.characters(t)
	}
	return nil
}

func (d *decoderDriver) Close() error {
	d.dec = nil
	d.h = nil
	return nil
}

// chunkDriver drives the handler from the low-allocation chunked
// tokenizer. End elements are flagged via IsEndElement; processing
// instructions and markup declarations arrive with an empty Name and
// are skipped. Character data arrives attached to its start element.
type chunkDriver struct {
	tok *xmltokenizer.Tokenizer
	h   *handler
}

func (d *chunkDriver) Setup(src io.Reader, h *handler) {
	d.tok = xmltokenizer.New(src)
	d.h = h
}

func (d *chunkDriver) ParseNext() error {
	token, err := d.tok.Token()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return errors.WithStack(gmlerr.ParseFailed(gmlerr.WithMessage(err.Error())))
	}

	full := string(token.Name.Full)
	switch {
	case full == "":
		// prolog, comment or doctype
	case token.IsEndElement:
		d.h.endElement(xmlutil.XMLName(xmlutil.Local(full), string(token.Name.Prefix)))
	default:
		name := xmlutil.XMLName(string(token.Name.Local), string(token.Name.Prefix))
		var attrs []xml.Attr
		if len(token.Attrs) > 0 {
			attrs = make([]xml.Attr, 0, len(token.Attrs))
			for i := range token.Attrs {
				a := &token.Attrs[i]
				attrs = append(attrs, xml.Attr{
					Name:  xmlutil.XMLName(string(a.Name.Local), string(a.Name.Prefix)),
					Value: string(a.Value),
				})
			}
		}
		d.h.startElement(name, attrs)
		if len(token.Data) > 0 {
			d.h.characters(token.Data)
		}
		if token.SelfClosing {
			d.h.endElement(name)
		}
	}
	return nil
}

func (d *chunkDriver) Close() error {
	d.tok = nil
	d.h = nil
	return nil
}
