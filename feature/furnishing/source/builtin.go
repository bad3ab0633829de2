package source

import "context"

var (
	typesHeader = []string{"Furniture Name", "Revit Family Name", "Revit Family Type"}
	setsHeader  = []string{"Furniture Set", "Room Type", "Included Furniture"}
)

var builtinTypes = [][]string{
	typesHeader,
	{"desk", "Desk", "60in x 30in"},
	{"task chair", "Chair-Task", "Chair-Task"},
	{"side chair", "Chair-Breuer", "Chair-Breuer"},
	{"bookcase", "Shelving", "96in x 12in x 84in"},
	{"loveseat", "Sofa", "54in"},
	{"teacher desk", "Table-Rectangular", "48in x 30in"},
	{"student desk", "Desk", "60in x 30in Student"},
	{"computer desk", "Table-Rectangular", "48in x 30in"},
	{"lab desk", "Table-Rectangular", "72in x 30in"},
	{"lounge chair", "Chair-Corbu", "Chair-Corbu"},
	{"coffee table", "Table-Coffee", "30in x 60in x 18in"},
	{"sofa", "Sofa-Corbu", "Sofa-Corbu"},
	{"dining table", "Table-Dining", "30in x 84in x 22in"},
	{"dining chair", "Chair-Breuer", "Chair-Breuer"},
	{"stool", "Chair-Task", "Chair-Task"},
}

var builtinSets = [][]string{
	setsHeader,
	{"A", "Office", "desk, task chair, side chair, bookcase"},
	{"A2", "Office", "desk, task chair, side chair, bookcase, loveseat"},
	{"B", "Classroom - Large", "teacher desk, task chair, student desk, student desk, student desk, student desk, student desk, student desk, student desk, student desk, student desk, student desk, student desk, student desk"},
	{"B2", "Classroom - Medium", "teacher desk, task chair, student desk, student desk, student desk, student desk, student desk, student desk, student desk, student desk"},
	{"C", "Computer Lab", "computer desk, computer desk, computer desk, computer desk, computer desk, computer desk, task chair, task chair, task chair, task chair, task chair, task chair"},
	{"D", "Lab", "teacher desk, task chair, lab desk, lab desk, lab desk, lab desk, lab desk, lab desk, lab desk, stool, stool, stool, stool, stool, stool, stool"},
	{"E", "Student Lounge", "lounge chair, lounge chair, lounge chair, sofa, coffee table, bookcase"},
	{"F", "Teacher's Lounge", "lounge chair, lounge chair, sofa, coffee table, dining table, dining chair, dining chair, dining chair, dining chair, bookcase"},
	{"G", "Waiting Room", "lounge chair, lounge chair, sofa, coffee table"},
}

type builtin struct{}

// Builtin returns the standard furnishing tables.
func Builtin() Source {
	return builtin{}
}

func (builtin) Name() string { return KindBuiltin }

func (builtin) FurnitureTypes(ctx context.Context) ([][]string, error) {
	return cloneRows(builtinTypes), nil
}

func (builtin) FurnitureSets(ctx context.Context) ([][]string, error) {
	return cloneRows(builtinSets), nil
}

func cloneRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
