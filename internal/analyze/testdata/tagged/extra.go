//go:build realmextra

package tagged

//realm:derive
type Extra struct {
	component any
}
