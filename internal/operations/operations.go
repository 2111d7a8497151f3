package operations

type Action string

const (
	InsertLine  Action = "insert"
	ReplaceLine Action = "replace"
	DeleteLine  Action = "delete"
	Reload      Action = "reload"
)

// Operation records one applied line edit, enough to revert it.
type Operation struct {
	Action   Action
	Line     int      // rank the edit applied to
	Text     string   // inserted or new text
	Previous string   // replaced or deleted text
	Lines    []string // full document before a reload
	Cursor   int      // cursor before the edit
}

// Journal is a stack of applied operations, most recent last.
type Journal []Operation

func (j *Journal) Push(op Operation) { *j = append(*j, op) }

func (j *Journal) Pop() (Operation, bool) {
	if len(*j) == 0 { return Operation{}, false }
	op := (*j)[len(*j)-1]
	*j = (*j)[:len(*j)-1]
	return op, true
}

func (j Journal) Len() int { return len(j) }
