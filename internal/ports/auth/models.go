package auth

// Claims es la identidad del usuario logueado, resuelta desde la sesión.
type Claims struct {
	UserID      string
	Email       string
	DisplayName string
}

// Account es lo que devuelve el backend al autenticar: identidad + bearer
// token que los adapters reenvían en cada request.
type Account struct {
	UserID      string
	Email       string
	DisplayName string
	APIToken    string
}

// Credentials para login/signup contra el backend.
type Credentials struct {
	Email       string
	Password    string
	DisplayName string // solo signup
}
