package domain

// CatalogSeed is a prepared set of members and books loaded into a fresh catalog.
type CatalogSeed struct {
	Members []SeedMember
	Books   []SeedBook
}

type SeedMember struct {
	ID       MemberID
	Username string
}

type SeedBook struct {
	Title  string
	Author string
	ISBN   ISBN
}

func (s CatalogSeed) Empty() bool {
	return len(s.Members) == 0 && len(s.Books) == 0
}
