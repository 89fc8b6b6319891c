package pointer

import "github.com/agentflare-ai/tagtree/value"

// GetInteger, GetReal, GetText, GetBoolean are typed convenience reads
// over Get, mirroring the reference's cbor_pointer_geti/getf/gets/getb
// family. They return the accessor's zero value when path is missing
// or the target has a different kind.
func GetInteger(root value.Value, path string) int64 { return Get(root, path).AsInteger() }
func GetReal(root value.Value, path string) float64  { return Get(root, path).AsReal() }
func GetText(root value.Value, path string) string   { return Get(root, path).AsText() }
func GetBoolean(root value.Value, path string) bool  { return Get(root, path).AsBoolean() }

// SetInteger, SetReal, SetText, SetBoolean, SetNull, SetArray, SetMap
// are typed convenience upserts over Set, mirroring the reference's
// cbor_pointer_seti/setf/sets/setb/setn/seta/seto family.
func SetInteger(root value.Value, path string, i int64) (value.Value, error) {
	return Set(root, path, value.Integer(i))
}
func SetReal(root value.Value, path string, f float64) (value.Value, error) {
	return Set(root, path, value.Real(f))
}
func SetText(root value.Value, path string, s string) (value.Value, error) {
	return Set(root, path, value.Text(s))
}
func SetBoolean(root value.Value, path string, b bool) (value.Value, error) {
	return Set(root, path, value.Boolean(b))
}
func SetNull(root value.Value, path string) (value.Value, error) {
	return Set(root, path, value.Null())
}
func SetArray(root value.Value, path string) (value.Value, error) {
	return Set(root, path, value.Array())
}
func SetMap(root value.Value, path string) (value.Value, error) {
	return Set(root, path, value.Map())
}
