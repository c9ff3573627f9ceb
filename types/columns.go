package types

// Fixed column positions of the standard case tables. Row semantics and
// these positions match the MATPOWER/PYPOWER table format; the conversion
// code only touches the identifier columns (BusI, GenBus, FBus, TBus,
// PriceRefBus) and treats everything else as payload.

// Bus table columns.
const (
	BusI    = iota // bus identifier
	BusType        // bus type (PQ, PV, Ref, None)
	PD             // real power demand (MW)
	QD             // reactive power demand (MVAr)
	GS             // shunt conductance
	BS             // shunt susceptance
	BusArea        // area number
	VM             // voltage magnitude (p.u.)
	VA             // voltage angle (degrees)
	BaseKV         // base voltage (kV)
	Zone           // loss zone
	VMax           // maximum voltage magnitude
	VMin           // minimum voltage magnitude
)

// Bus type codes stored in the BusType column.
const (
	PQ   = 1
	PV   = 2
	Ref  = 3
	None = 4 // isolated bus, excluded from internal numbering
)

// Generator table columns.
const (
	GenBus    = iota // bus the generator is connected to
	PG               // real power output (MW)
	QG               // reactive power output (MVAr)
	QMax             // maximum reactive output
	QMin             // minimum reactive output
	VG               // voltage setpoint (p.u.)
	MBase            // machine MVA base
	GenStatus        // >0 in service, <=0 out of service
	PMax             // maximum real output
	PMin             // minimum real output
)

// Branch table columns.
const (
	FBus     = iota // from-bus identifier
	TBus            // to-bus identifier
	BrR             // resistance (p.u.)
	BrX             // reactance (p.u.)
	BrB             // total line charging susceptance
	RateA           // MVA rating A
	RateB           // MVA rating B
	RateC           // MVA rating C
	Tap             // transformer tap ratio
	Shift           // transformer phase shift (degrees)
	BrStatus        // 1 in service, 0 out of service
	AngMin          // minimum angle difference
	AngMax          // maximum angle difference
)

// Area table columns.
const (
	AreaI       = iota // area number
	PriceRefBus        // area price reference bus identifier
)

// Generator cost table columns.
const (
	CostModel = iota // cost model code
	Startup          // startup cost
	Shutdown         // shutdown cost
	NCost            // number of cost coefficients / breakpoints
	Cost             // first coefficient; the rest follow
)

// Cost model codes stored in the CostModel column.
const (
	PwLinear   = 1
	Polynomial = 2
)
