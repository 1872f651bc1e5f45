package aipmatests

import (
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const fixtureDateFormat = time.RFC3339

func articleFixture(now time.Time) ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("titulo", ldvalue.String("Nuevo Protocolo de Verificación Digital para Medios Latinoamericanos")).
		Set("resumen", ldvalue.String("AIPMA presenta un innovador protocolo de verificación digital diseñado "+
			"específicamente para medios de comunicación en América Latina.")).
		Set("contenido", ldvalue.String("La Alianza Internacional de Periodismo y Medios Audiovisuales ha desarrollado "+
			"un protocolo de verificación digital que promete transformar la manera en que los medios "+
			"latinoamericanos abordan la verificación de hechos en la era digital. Este protocolo incluye "+
			"herramientas de inteligencia artificial, metodologías de fact-checking y estándares éticos "+
			"adaptados a la realidad regional.")).
		Set("categoria", ldvalue.String("Tecnología")).
		Set("autor", ldvalue.String("Dr. Carlos Mendoza")).
		Set("fecha", ldvalue.String(now.AddDate(0, 0, 1).Format(fixtureDateFormat))).
		Build()
}

func eventFixture(now time.Time) ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("titulo", ldvalue.String("Seminario Internacional de Periodismo de Datos")).
		Set("descripcion", ldvalue.String("Un seminario intensivo sobre las últimas técnicas y herramientas de "+
			"periodismo de datos, dirigido a profesionales de medios de comunicación de habla hispana.")).
		Set("fecha", ldvalue.String(now.AddDate(0, 0, 60).Format(fixtureDateFormat))).
		Set("ubicacion", ldvalue.String("Ciudad de México, México")).
		Set("tipo", ldvalue.String("seminario")).
		Set("capacidad", ldvalue.Int(80)).
		Build()
}

func memberFixture(now time.Time) ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("nombre", ldvalue.String("Isabella Fernández")).
		Set("organizacion", ldvalue.String("Radio Televisión Española")).
		Set("especialidad", ldvalue.String("Periodismo Radiofónico")).
		Set("pais", ldvalue.String("España")).
		Set("tipo", ldvalue.String("periodista")).
		Set("fechaIngreso", ldvalue.String(now.Format(fixtureDateFormat))).
		Build()
}

func contactFixture() ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("nombre", ldvalue.String("María Elena Rodríguez")).
		Set("email", ldvalue.String("maria.rodriguez@periodismo.es")).
		Set("mensaje", ldvalue.String("Estimados colegas, me interesa conocer más sobre las oportunidades de "+
			"colaboración con AIPMA en proyectos de periodismo investigativo.")).
		Build()
}

// malformedContactPayload has none of the fields the contact endpoint expects.
func malformedContactPayload() ldvalue.Value {
	return ldvalue.ObjectBuild().Set("invalid", ldvalue.String("data")).Build()
}
