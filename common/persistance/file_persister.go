package persistance

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/youtube/vitess/go/ioutil2"

	"krypt.co/gwt/common/gwt"
	"krypt.co/gwt/common/util"
)

type FilePersister struct {
	Dir string
}

//	DefaultPersister persists into the state directory (~/.gwt).
func DefaultPersister() (fp FilePersister, err error) {
	dir, err := util.GwtDir()
	if err != nil {
		return
	}
	fp = FilePersister{Dir: dir}
	return
}

func (fp FilePersister) path() string {
	return filepath.Join(fp.Dir, CLASSES_FILENAME)
}

//	LoadShapes returns an empty map when nothing was saved yet.
func (fp FilePersister) LoadShapes() (shapes gwt.TypeShapes, err error) {
	shapes = gwt.TypeShapes{}
	shapesJson, err := ioutil.ReadFile(fp.path())
	if os.IsNotExist(err) {
		err = nil
		return
	}
	if err != nil {
		return
	}
	err = json.Unmarshal(shapesJson, &shapes)
	if err != nil {
		return
	}
	for tag, count := range shapes {
		if count < 0 {
			err = fmt.Errorf("negative field count %d for %s in %s", count, tag, fp.path())
			return
		}
	}
	return
}

func (fp FilePersister) SaveShapes(shapes gwt.TypeShapes) (err error) {
	shapesJson, err := json.MarshalIndent(shapes, "", "    ")
	if err != nil {
		return
	}
	err = ioutil2.WriteFileAtomic(fp.path(), shapesJson, 0600)
	return
}

func (fp FilePersister) DeleteShapes() (err error) {
	err = os.Remove(fp.path())
	if os.IsNotExist(err) {
		err = nil
	}
	return
}
