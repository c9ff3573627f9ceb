package types

import "github.com/google/uuid"

// Stage names at which extension callbacks run.
const (
	StageExt2Int  = "ext2int"
	StageInt2Ext  = "int2ext"
	StagePrintPF  = "printpf"
	StageSaveCase = "savecase"
)

// UserFcnFunc transforms a case at a callback stage. It may mutate and
// return the same case or return a replacement.
type UserFcnFunc func(*Case) (*Case, error)

// UserFcn is a registered extension callback. ID is the registration handle
// returned at registration time; Args is an opaque extension payload the
// runner never inspects.
type UserFcn struct {
	ID    uuid.UUID
	Stage string
	Fn    UserFcnFunc
	Args  any
}
