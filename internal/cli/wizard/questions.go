package wizard

import "github.com/mawsis/nebula-cli/pkg/models"

var shapeDescriptions = map[models.AppShape]string{
	models.ShapeFullApp: "Controllers, views and form objects",
	models.ShapeAPIOnly: "JSON resources, no views",
}

var databaseDescriptions = map[models.Database]string{
	models.DatabaseMySQL:      "port 3306",
	models.DatabasePostgreSQL: "port 5432",
	models.DatabaseSQLite:     "single file, no server",
	models.DatabaseNone:       "configure later",
}

// DefaultQuestions returns the shape and database questions. The
// preselected option of each question is listed first.
func DefaultQuestions(d Defaults) []Question {
	r := d.resolve()
	shape, db := r.Shape, r.Database

	shapes := make([]Option, 0, len(models.ValidShapes()))
	for _, s := range models.ValidShapes() {
		shapes = append(shapes, Option{Label: s.Label(), Value: string(s), Desc: shapeDescriptions[s]})
	}
	dbs := make([]Option, 0, len(models.ValidDatabases()))
	for _, v := range models.ValidDatabases() {
		dbs = append(dbs, Option{Label: v.Label(), Value: string(v), Desc: databaseDescriptions[v]})
	}

	return []Question{
		{
			ID:          QuestionShape,
			Title:       "Which kind of application?",
			Description: "Decides the folders and routes file that are generated.",
			Options:     defaultFirst(shapes, string(shape)),
			Default:     string(shape),
		},
		{
			ID:          QuestionDatabase,
			Title:       "Which database?",
			Description: "Written to config/database.php; credentials stay in .env.",
			Options:     defaultFirst(dbs, string(db)),
			Default:     string(db),
		},
	}
}

// defaultFirst moves the option with value def to the front, keeping the
// relative order of the rest.
func defaultFirst(opts []Option, def string) []Option {
	out := make([]Option, 0, len(opts))
	for _, o := range opts {
		if o.Value == def {
			out = append(out, o)
		}
	}
	for _, o := range opts {
		if o.Value != def {
			out = append(out, o)
		}
	}
	return out
}

// hasOption reports whether value is one of q's options.
func (q *Question) hasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}
