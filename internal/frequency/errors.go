package frequency

// UnderflowError is returned by Decrement when the method has no outstanding count. In the
// context of a sweep it means an interval ended without having begun, i.e. the interval stream
// is corrupt or out of order.
type UnderflowError struct {
	Method string
}

func (e *UnderflowError) Error() string {
	return "count underflow for method " + e.Method
}
