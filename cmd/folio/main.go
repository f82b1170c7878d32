// Package main is the entry point for folio.
//
//	@title						Folio - Personal Portfolio Server
//	@version					1.0
//	@description				Self-hosted portfolio site with an admin area, manual test tracking and the HotSeat camera endpoints.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@securityDefinitions.apikey	CookieAuth
//	@in							cookie
//	@name						admin_session
//	@description				Admin session credential issued by /api/auth/login
package main

func main() {
	Execute()
}
