package nodekit

import "context"

// Run drives one invocation of c: declared defaults are applied to absent
// parameters, the result is validated against c's declared inputs, and a
// single Call is made. Parameter problems surface as validation failures
// without reaching the external call; Call errors surface as call failures.
func Run(ctx context.Context, c Component, params Params) Result {
	meta := c.Meta()
	p := meta.ApplyDefaults(params)
	if err := meta.ValidateParams(p); err != nil {
		return Fail(err)
	}
	payload, err := c.Call(ctx, p)
	if err != nil {
		return Fail(err)
	}
	return Succeed(payload)
}
