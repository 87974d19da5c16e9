package pdfsrc

import "context"

// FakeSource is an in-memory Source backing unit and pipeline tests.
type FakeSource struct {
	Pages []Page
	Err   error
}

func (f *FakeSource) PageCount(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if f.Err != nil {
		return 0, f.Err
	}
	return len(f.Pages), nil
}

func (f *FakeSource) RenderPage(ctx context.Context, pageIndex int, dpi int) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	if f.Err != nil {
		return Page{}, f.Err
	}
	if pageIndex < 0 || pageIndex >= len(f.Pages) {
		return Page{}, ErrPageOutOfRange
	}
	return f.Pages[pageIndex], nil
}

func (f *FakeSource) ExtractEmbeddedText(ctx context.Context, pageIndex int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.Err != nil {
		return "", f.Err
	}
	if pageIndex < 0 || pageIndex >= len(f.Pages) {
		return "", ErrPageOutOfRange
	}
	return f.Pages[pageIndex].EmbeddedText, nil
}
