package aipmatests

import (
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// CreationTimestampField is assigned by the server to every created resource.
const CreationTimestampField = "fechaCreacion"

// resourceKind describes one of the parallel list/create endpoints.
type resourceKind struct {
	title     string // used in test names, e.g. "GET Noticias"
	path      string
	listField string
	itemField string // property holding the created resource in a POST response
	noun      string // plural, for success messages
	singular  string // for details of created resources
	emptyList string

	requiredFields []string
	sampleField    string

	// Optional checks on the first listed item. An empty dateField or nil languageFields
	// disables the corresponding check.
	dateField          string
	languageFields     []string
	languageIndicators []string

	fixture func(now time.Time) ldvalue.Value
}

var articles = resourceKind{
	title:          "Noticias",
	path:           "/noticias",
	listField:      "noticias",
	itemField:      "noticia",
	noun:           "news articles",
	singular:       "article",
	emptyList:      "No articles found",
	requiredFields: []string{"id", "titulo", "resumen", "contenido", "categoria", "autor", "fecha"},
	sampleField:    "titulo",
	languageFields: []string{"titulo", "resumen", "contenido"},
	languageIndicators: []string{
		"ética", "periodística", "internacional", "medios", "audiovisuales",
	},
	fixture: articleFixture,
}

var events = resourceKind{
	title:          "Eventos",
	path:           "/eventos",
	listField:      "eventos",
	itemField:      "evento",
	noun:           "events",
	singular:       "event",
	emptyList:      "No events found",
	requiredFields: []string{"id", "titulo", "descripcion", "fecha", "ubicacion", "tipo", "capacidad"},
	sampleField:    "titulo",
	dateField:      "fecha",
	languageFields: []string{"titulo", "descripcion"},
	languageIndicators: []string{
		"periodismo", "digital", "taller", "verificación", "hechos", "medios",
	},
	fixture: eventFixture,
}

var members = resourceKind{
	title:          "Miembros",
	path:           "/miembros",
	listField:      "miembros",
	itemField:      "miembro",
	noun:           "members",
	singular:       "member",
	emptyList:      "No members found",
	requiredFields: []string{"id", "nombre", "organizacion", "especialidad", "pais", "tipo", "fechaIngreso"},
	sampleField:    "nombre",
	dateField:      "fechaIngreso",
	fixture:        memberFixture,
}

var allResourceKinds = []resourceKind{articles, events, members}
