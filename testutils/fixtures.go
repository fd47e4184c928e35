package testutils

var TestAccounts = struct {
	Alice struct {
		Email       string
		DisplayName string
		Secret      string
	}
	Bob struct {
		Email       string
		DisplayName string
		Secret      string
	}
}{
	Alice: struct {
		Email       string
		DisplayName string
		Secret      string
	}{
		Email:       "a@example.com",
		DisplayName: "Alice",
		Secret:      "Sup3r$ecret",
	},
	Bob: struct {
		Email       string
		DisplayName string
		Secret      string
	}{
		Email:       "bob@example.com",
		DisplayName: "Bob",
		Secret:      "An0ther$ecret",
	},
}
