package entity

// Company representa un proveedor identificado por su GCP. Inmutable una vez
// creado dentro del alcance del motor de inventario.
type Company struct {
	Gcp     string
	Name    string
	Address string
	City    string
	Tel     string
	Mail    string
}
