package tagged

//realm:derive
type Plain struct {
	component any
}
