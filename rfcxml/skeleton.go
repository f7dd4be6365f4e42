package rfcxml

import (
	"fmt"
	"io"
	"text/template"
	"time"
)

// Metadata describes the document the catalog is embedded into.
type Metadata struct {
	DocName  string
	Title    string
	Abbrev   string
	Abstract string
	Author   Author
	Date     time.Time
}

// Author is the author of the document.
type Author struct {
	Initials      string
	Surname       string
	Fullname      string
	AsciiFullname string
	Organization  string
	Country       string
	Email         string
}

// DefaultMetadata describes the Internet-Draft
// draft-rathnayake-xml2rfc-unicode-00.
func DefaultMetadata() Metadata {
	return Metadata{
		DocName: "draft-rathnayake-xml2rfc-unicode-00",
		Title:   "Experiment with Unicode characters in xml2rfc",
		Abbrev:  "xml2rfc-unicode",
		Abstract: "This draft is an experiment to explore what happens when various Unicode " +
			"characters are on an Internet-Draft and how xml2rfc handles that.",
		Author: Author{
			Initials:      "K.",
			Surname:       "Nanayakkara Rathnayake",
			Fullname:      "කෙසර නානායක්කාර රත්නායක",
			AsciiFullname: "Kesara Nanayakkara Rathnayake",
			Organization:  "IETF Administration LLC",
			Country:       "New Zealand",
			Email:         "kesara@fq.nz",
		},
		Date: time.Date(2023, time.March, 7, 0, 0, 0, 0, time.UTC),
	}
}

// Skeleton renders the document parts surrounding the catalog.
type Skeleton struct {
	meta   Metadata
	header *template.Template
	footer *template.Template
}

// NewSkeleton creates a skeleton for a document described by meta.
// Empty fields of meta are taken from DefaultMetadata.
func NewSkeleton(meta Metadata) (*Skeleton, error) {
	meta = withDefaults(meta)
	funcs := template.FuncMap{
		"text": EscapeText,
		"attr": EscapeAttr,
	}
	header, err := template.New("header").Funcs(funcs).Parse(headerTemplate)
	if err != nil {
		return nil, fmt.Errorf("rfcxml: header template: %w", err)
	}
	footer, err := template.New("footer").Funcs(funcs).Parse(footerTemplate)
	if err != nil {
		return nil, fmt.Errorf("rfcxml: footer template: %w", err)
	}
	return &Skeleton{meta: meta, header: header, footer: footer}, nil
}

func withDefaults(meta Metadata) Metadata {
	def := DefaultMetadata()
	if meta.DocName == "" {
		meta.DocName = def.DocName
	}
	if meta.Title == "" {
		meta.Title = def.Title
	}
	if meta.Abbrev == "" {
		meta.Abbrev = def.Abbrev
	}
	if meta.Abstract == "" {
		meta.Abstract = def.Abstract
	}
	if meta.Author == (Author{}) {
		meta.Author = def.Author
	}
	if meta.Date.IsZero() {
		meta.Date = def.Date
	}
	return meta
}

// Metadata returns the document description in use.
func (s *Skeleton) Metadata() Metadata {
	return s.meta
}

// WriteHeader writes the XML declaration, the front matter and the
// introductory sections, leaving <middle> open.
func (s *Skeleton) WriteHeader(w io.Writer) error {
	return s.header.Execute(w, s.meta)
}

// WriteFooter closes <middle> and writes the references.
func (s *Skeleton) WriteFooter(w io.Writer) error {
	return s.footer.Execute(w, s.meta)
}

const headerTemplate = `<?xml version="1.0" encoding="utf-8"?>

<rfc ipr="trust200902" docName="{{ attr .DocName }}" category="exp" submissionType="independent" tocInclude="true" sortRefs="true" symRefs="true">
  <front>
    <title abbrev="{{ attr .Abbrev }}">{{ text .Title }}</title>
    <author initials="{{ attr .Author.Initials }}" surname="{{ attr .Author.Surname }}" asciiFullname="{{ attr .Author.AsciiFullname }}" fullname="{{ attr .Author.Fullname }}">
      <organization>{{ text .Author.Organization }}</organization>
      <address>
        <postal>
          <country>{{ text .Author.Country }}</country>
        </postal>
        <email>{{ text .Author.Email }}</email>
      </address>
    </author>
    <date year="{{ .Date.Year }}" month="{{ .Date.Month }}" day="{{ .Date.Format "02" }}"/>
    <abstract>
      <t>{{ text .Abstract }}</t>
    </abstract>
  </front>
  <middle>
    <section anchor="introduction">
      <name>Introduction</name>
      <t>Non-ASCII characters are allowed in RFCs under several restrictions. See <xref target="RFC7997" />.</t>
      <t>Some XML2RFC elements allow the use of bare Unicode and other elements can make use of <tt>&lt;u&gt;</tt> element. See <xref target="RFC7991" />.</t>
      <t>Various non-Latin Unicode characters can be an issue in RFC publications. Especially generating PDF format of the document. This is because the correct font has to be identified and included in the PDF file. This is done by the xml2rfc too. See <xref target="xml2rfc" />.</t>
      <t>xml2rfc maintains its own list of Unicode script blocks. Depending on which script is used, xml2rfc matches the correct Noto font.</t>
      <t>This document is an experiment on when Unicode characters from different blocks are included in an Internet-Draft.</t>
    </section>
    <section>
      <name>Methodology</name>
      <t>The Unicode characters blocks are identified using <xref target="blocks" />.</t>
      <t>The xml2rfc is used as an API to identify which script blocks are assigned to that character and predicted font names for set of characters from each Unicode code block. The xml2rfc might predict a non-existing font. These are the instances where xml2rfc might leak non-standard fonts to generated PDF files.</t>
    </section>
`

const footerTemplate = `  </middle>
  <back>
    <references>
      <name>Informative References</name>
      <reference anchor="RFC7997" target="https://www.rfc-editor.org/info/rfc7997">
        <front>
          <title>The Use of Non-ASCII Characters in RFCs</title>
          <author fullname="H. Flanagan" initials="H." role="editor" surname="Flanagan"/>
          <date month="December" year="2016"/>
        </front>
        <seriesInfo name="RFC" value="7997"/>
        <seriesInfo name="DOI" value="10.17487/RFC7997"/>
      </reference>
      <reference anchor="RFC7991" target="https://www.rfc-editor.org/info/rfc7991">
        <front>
          <title>The "xml2rfc" Version 3 Vocabulary</title>
          <author fullname="P. Hoffman" initials="P." surname="Hoffman"/>
          <date month="December" year="2016"/>
        </front>
        <seriesInfo name="RFC" value="7991"/>
        <seriesInfo name="DOI" value="10.17487/RFC7991"/>
      </reference>
      <reference anchor="xml2rfc" target="https://github.com/ietf-tools/xml2rfc/">
        <front>
          <title>xml2rfc</title>
          <author>
            <organization>IETF</organization>
          </author>
          <date month="March" day="8" year="2023"/>
        </front>
      </reference>
      <reference anchor="blocks" target="https://www.unicode.org/Public/15.0.0/ucd/Blocks.txt">
        <front>
          <title>Blocks-15.0.0</title>
          <author>
            <organization>Unicode, Inc.</organization>
          </author>
          <date month="January" day="28" year="2022"/>
        </front>
      </reference>
      <reference anchor="charts" target="https://www.unicode.org/charts/">
        <front>
          <title>Unicode 15.0 Character Code Charts</title>
          <author>
            <organization>Unicode, Inc.</organization>
          </author>
          <date month="March" day="8" year="2023"/>
        </front>
      </reference>
    </references>
  </back>
</rfc>
`
