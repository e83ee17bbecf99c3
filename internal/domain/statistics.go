package domain

type Statistics struct {
	Total    int
	Borrowed int
}

func (s Statistics) Available() int {
	return s.Total - s.Borrowed
}
