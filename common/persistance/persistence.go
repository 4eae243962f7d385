package persistance

import (
	"krypt.co/gwt/common/gwt"
)

const CLASSES_FILENAME = "classes.json"

//	Persister stores learned type shapes between runs.
type Persister interface {
	LoadShapes() (shapes gwt.TypeShapes, err error)
	SaveShapes(shapes gwt.TypeShapes) (err error)
	DeleteShapes() (err error)
}
