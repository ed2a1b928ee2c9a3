package domain

// RenderedDocument is the transient output of one render: the two-page PDF
// byte stream and the file name it should be delivered under (without
// extension). It is owned by the caller until delivered, never persisted.
type RenderedDocument struct {
	Name string
	Data []byte
}
