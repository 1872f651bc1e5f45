package fakeapi

import (
	"time"

	"github.com/google/uuid"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func day(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return formatTime(t)
}

func demoNoticias(now time.Time) []ldvalue.Value {
	return []ldvalue.Value{
		ldvalue.ObjectBuild().
			Set("id", ldvalue.String(uuid.NewString())).
			Set("titulo", ldvalue.String("Nueva Iniciativa Global para la Ética Periodística")).
			Set("resumen", ldvalue.String("AIPMA lanza un programa internacional para fortalecer los estándares "+
				"éticos en el periodismo mundial.")).
			Set("contenido", ldvalue.String("La Alianza Internacional de Periodismo y Medios Audiovisuales ha "+
				"anunciado el lanzamiento de una nueva iniciativa global destinada a fortalecer los estándares "+
				"éticos en el periodismo. Este programa incluirá talleres, certificaciones y recursos para "+
				"periodistas de todo el mundo.")).
			Set("categoria", ldvalue.String("Ética")).
			Set("autor", ldvalue.String("María González")).
			Set("fecha", ldvalue.String(day("2024-01-15"))).
			Set("fechaCreacion", ldvalue.String(formatTime(now))).
			Build(),
		ldvalue.ObjectBuild().
			Set("id", ldvalue.String(uuid.NewString())).
			Set("titulo", ldvalue.String("Conferencia Internacional sobre Medios Audiovisuales 2024")).
			Set("resumen", ldvalue.String("Se anuncia la fecha y ubicación de la conferencia anual más importante "+
				"de medios audiovisuales.")).
			Set("contenido", ldvalue.String("La conferencia internacional de medios audiovisuales 2024 se llevará "+
				"a cabo en Barcelona, España, del 15 al 18 de marzo.")).
			Set("categoria", ldvalue.String("Eventos")).
			Set("autor", ldvalue.String("Carlos Rodríguez")).
			Set("fecha", ldvalue.String(day("2024-01-10"))).
			Set("fechaCreacion", ldvalue.String(formatTime(now))).
			Build(),
		ldvalue.ObjectBuild().
			Set("id", ldvalue.String(uuid.NewString())).
			Set("titulo", ldvalue.String("Impacto de la Inteligencia Artificial en el Periodismo")).
			Set("resumen", ldvalue.String("Análisis profundo sobre cómo la IA está transformando la profesión "+
				"periodística.")).
			Set("contenido", ldvalue.String("La inteligencia artificial está revolucionando el campo del "+
				"periodismo, desde la automatización de noticias hasta la verificación de hechos.")).
			Set("categoria", ldvalue.String("Tecnología")).
			Set("autor", ldvalue.String("Ana Martínez")).
			Set("fecha", ldvalue.String(day("2024-01-05"))).
			Set("fechaCreacion", ldvalue.String(formatTime(now))).
			Build(),
	}
}

func demoEventos(now time.Time) []ldvalue.Value {
	return []ldvalue.Value{
		ldvalue.ObjectBuild().
			Set("id", ldvalue.String(uuid.NewString())).
			Set("titulo", ldvalue.String("Cumbre Mundial de Periodismo Digital")).
			Set("descripcion", ldvalue.String("Un encuentro global para explorar el futuro del periodismo en la "+
				"era digital, con workshops prácticos y conferencias magistrales de expertos internacionales.")).
			Set("fecha", ldvalue.String(day("2024-03-20"))).
			Set("ubicacion", ldvalue.String("Madrid, España")).
			Set("tipo", ldvalue.String("conferencia")).
			Set("capacidad", ldvalue.Int(300)).
			Set("fechaCreacion", ldvalue.String(formatTime(now))).
			Build(),
		ldvalue.ObjectBuild().
			Set("id", ldvalue.String(uuid.NewString())).
			Set("titulo", ldvalue.String("Taller de Verificación de Hechos")).
			Set("descripcion", ldvalue.String("Seminario intensivo sobre técnicas avanzadas de fact-checking y "+
				"herramientas digitales para la verificación de información en tiempo real.")).
			Set("fecha", ldvalue.String(day("2024-02-15"))).
			Set("ubicacion", ldvalue.String("Online")).
			Set("tipo", ldvalue.String("taller")).
			Set("capacidad", ldvalue.Int(100)).
			Set("fechaCreacion", ldvalue.String(formatTime(now))).
			Build(),
		ldvalue.ObjectBuild().
			Set("id", ldvalue.String(uuid.NewString())).
			Set("titulo", ldvalue.String("Simposio de Ética en Medios Audiovisuales")).
			Set("descripcion", ldvalue.String("Debate internacional sobre los dilemas éticos en la producción y "+
				"distribución de contenido audiovisual en plataformas digitales.")).
			Set("fecha", ldvalue.String(day("2024-04-10"))).
			Set("ubicacion", ldvalue.String("Buenos Aires, Argentina")).
			Set("tipo", ldvalue.String("simposio")).
			Set("capacidad", ldvalue.Int(150)).
			Set("fechaCreacion", ldvalue.String(formatTime(now))).
			Build(),
	}
}

func demoMiembros(now time.Time) []ldvalue.Value {
	member := func(nombre, organizacion, especialidad, pais, tipo, ingreso string) ldvalue.Value {
		return ldvalue.ObjectBuild().
			Set("id", ldvalue.String(uuid.NewString())).
			Set("nombre", ldvalue.String(nombre)).
			Set("organizacion", ldvalue.String(organizacion)).
			Set("especialidad", ldvalue.String(especialidad)).
			Set("pais", ldvalue.String(pais)).
			Set("tipo", ldvalue.String(tipo)).
			Set("fechaIngreso", ldvalue.String(day(ingreso))).
			Set("fechaCreacion", ldvalue.String(formatTime(now))).
			Build()
	}
	return []ldvalue.Value{
		member("Elena Vásquez", "El Periódico Global", "Periodismo Investigativo", "España", "periodista", "2022-01-15"),
		member("Roberto Silva", "Media Latina Network", "Producción Audiovisual", "México", "productor", "2021-09-10"),
		member("Sarah Johnson", "International Press Alliance", "Periodismo Digital", "Estados Unidos", "editor", "2023-03-20"),
		member("Jean-Pierre Martin", "European Media Collective", "Documentales", "Francia", "director", "2022-11-05"),
	}
}
