// Package labels holds the translation tables for the fixed set of display
// labels used in rendered documents.
//
// Language selection uses BCP-47 matching: a tag that fails to parse is a
// configuration error, while a valid tag with no exact table falls back to
// the closest supported language, ultimately English.
package labels

import (
	"fmt"

	"golang.org/x/text/language"
)

// Table maps the fixed label keys to display strings for one language.
type Table struct {
	TableOfContents string
	GeneratedOn     string
	QueryParams     string
	Headers         string
	RequestBody     string
	FormData        string
	ResponseExample string
	ContentType     string
	ShowAll         string
	Collapse        string
	NoRequest       string
	Key             string
	Value           string
	Type            string
	Description     string
}

// supported lists the languages with a table, in matcher priority order.
// English first: it is the fallback for everything else.
var supported = []language.Tag{
	language.English,
	language.French,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

var tables = map[language.Tag]Table{
	language.English: {
		TableOfContents: "Table of contents",
		GeneratedOn:     "Generated on",
		QueryParams:     "Query parameters",
		Headers:         "Headers",
		RequestBody:     "Request body",
		FormData:        "Form data",
		ResponseExample: "Response example",
		ContentType:     "Content type",
		ShowAll:         "Show all",
		Collapse:        "Collapse",
		NoRequest:       "No request information available.",
		Key:             "Key",
		Value:           "Value",
		Type:            "Type",
		Description:     "Description",
	},
	language.French: {
		TableOfContents: "Table des matières",
		GeneratedOn:     "Généré le",
		QueryParams:     "Paramètres de requête",
		Headers:         "En-têtes",
		RequestBody:     "Corps de la requête",
		FormData:        "Données de formulaire",
		ResponseExample: "Exemple de réponse",
		ContentType:     "Type de contenu",
		ShowAll:         "Tout afficher",
		Collapse:        "Replier",
		NoRequest:       "Aucune information de requête disponible.",
		Key:             "Clé",
		Value:           "Valeur",
		Type:            "Type",
		Description:     "Description",
	},
	language.Spanish: {
		TableOfContents: "Índice",
		GeneratedOn:     "Generado el",
		QueryParams:     "Parámetros de consulta",
		Headers:         "Cabeceras",
		RequestBody:     "Cuerpo de la petición",
		FormData:        "Datos de formulario",
		ResponseExample: "Ejemplo de respuesta",
		ContentType:     "Tipo de contenido",
		ShowAll:         "Mostrar todo",
		Collapse:        "Plegar",
		NoRequest:       "No hay información de la petición.",
		Key:             "Clave",
		Value:           "Valor",
		Type:            "Tipo",
		Description:     "Descripción",
	},
}

// For returns the label table for a BCP-47 language tag string, along with
// the tag that was actually selected. An empty string selects English. An
// unparsable tag returns an error; a parsable but unsupported tag matches
// the closest supported language.
func For(lang string) (Table, language.Tag, error) {
	if lang == "" {
		return tables[language.English], language.English, nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return Table{}, language.Und, fmt.Errorf("invalid language tag %q: %w", lang, err)
	}
	_, idx, _ := matcher.Match(tag)
	chosen := supported[idx]
	return tables[chosen], chosen, nil
}

// Supported returns the supported language tags as strings.
func Supported() []string {
	out := make([]string, len(supported))
	for i, tag := range supported {
		out[i] = tag.String()
	}
	return out
}
