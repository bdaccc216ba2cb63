package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
)

// fakeBookRepo 内存图书仓储，记录关系替换调用
type fakeBookRepo struct {
	books  []*book.Book
	nextID uint

	replacedBookID uint
	replacedIDs    []uint
	replaceCalls   int
}

func newFakeBookRepo(books ...*book.Book) *fakeBookRepo {
	r := &fakeBookRepo{nextID: 1}
	for _, b := range books {
		b.ID = r.nextID
		r.nextID++
		r.books = append(r.books, b)
	}
	return r
}

func (r *fakeBookRepo) Create(_ context.Context, b *book.Book) error {
	b.ID = r.nextID
	r.nextID++
	r.books = append(r.books, b)
	return nil
}

func (r *fakeBookRepo) FindByID(_ context.Context, id uint) (*book.Book, error) {
	for _, b := range r.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (r *fakeBookRepo) FindByTitle(_ context.Context, title string) ([]*book.Book, error) {
	var out []*book.Book
	for _, b := range r.books {
		if b.Title == title {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookRepo) Update(_ context.Context, _ *book.Book) error { return nil }
func (r *fakeBookRepo) Delete(_ context.Context, _ uint) error       { return nil }

func (r *fakeBookRepo) List(_ context.Context, _, _ int) ([]*book.Book, int64, error) {
	return r.books, int64(len(r.books)), nil
}

func (r *fakeBookRepo) ReplaceAuthors(_ context.Context, bookID uint, authorIDs []uint) error {
	r.replacedBookID = bookID
	r.replacedIDs = authorIDs
	r.replaceCalls++
	return nil
}

// fakeAuthorRepo 内存作者仓储
type fakeAuthorRepo struct {
	authors []*author.Author
	nextID  uint

	replacedAuthorID uint
	replacedIDs      []uint
	replaceCalls     int
}

func newFakeAuthorRepo(authors ...*author.Author) *fakeAuthorRepo {
	r := &fakeAuthorRepo{nextID: 1}
	for _, a := range authors {
		a.ID = r.nextID
		r.nextID++
		r.authors = append(r.authors, a)
	}
	return r
}

func (r *fakeAuthorRepo) Create(_ context.Context, a *author.Author) error {
	a.ID = r.nextID
	r.nextID++
	r.authors = append(r.authors, a)
	return nil
}

func (r *fakeAuthorRepo) FindByID(_ context.Context, id uint) (*author.Author, error) {
	for _, a := range r.authors {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (r *fakeAuthorRepo) FindBySurname(_ context.Context, surname string) ([]*author.Author, error) {
	var out []*author.Author
	for _, a := range r.authors {
		if a.Surname == surname {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAuthorRepo) Update(_ context.Context, _ *author.Author) error { return nil }
func (r *fakeAuthorRepo) Delete(_ context.Context, _ uint) error           { return nil }

func (r *fakeAuthorRepo) List(_ context.Context) ([]*author.Author, error) {
	return r.authors, nil
}

func (r *fakeAuthorRepo) ReplaceBooks(_ context.Context, authorID uint, bookIDs []uint) error {
	r.replacedAuthorID = authorID
	r.replacedIDs = bookIDs
	r.replaceCalls++
	return nil
}

func yearPtr(y uint16) *uint16 { return &y }

func TestReconcileBookAuthors(t *testing.T) {
	ctx := context.Background()

	t.Run("命中已有作者时链接而不新建", func(t *testing.T) {
		bookRepo := newFakeBookRepo(book.NewBook("Книга 2", yearPtr(2020)))
		authorRepo := newFakeAuthorRepo(author.NewAuthor("Петров", "Петр", "Петрович", yearPtr(1990)))
		r := NewReconciler(bookRepo, authorRepo)

		res, err := r.ReconcileBookAuthors(ctx, 1, []AuthorRef{
			{Surname: "Петров", Name: "Петр", Patronymic: "Петрович", Year: yearPtr(1990)},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, res.Matched)
		assert.Equal(t, 0, res.Created)
		assert.Len(t, authorRepo.authors, 1, "作者总数应保持不变")
		assert.Equal(t, uint(1), bookRepo.replacedBookID)
		assert.Equal(t, []uint{1}, bookRepo.replacedIDs)
	})

	t.Run("年份不同仍命中且保留库中年份", func(t *testing.T) {
		bookRepo := newFakeBookRepo(book.NewBook("Книга 2", nil))
		existing := author.NewAuthor("Петров", "Петр", "Петрович", yearPtr(1990))
		authorRepo := newFakeAuthorRepo(existing)
		r := NewReconciler(bookRepo, authorRepo)

		res, err := r.ReconcileBookAuthors(ctx, 1, []AuthorRef{
			{Surname: "Петров", Name: "Петр", Patronymic: "Петрович", Year: yearPtr(201)},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, res.Matched)
		assert.Len(t, authorRepo.authors, 1)
		assert.Equal(t, uint16(1990), *existing.Year, "命中时不覆盖出生年份")
	})

	t.Run("未命中时新建作者并写入年份", func(t *testing.T) {
		bookRepo := newFakeBookRepo(book.NewBook("Книга 1", yearPtr(2013)))
		authorRepo := newFakeAuthorRepo()
		r := NewReconciler(bookRepo, authorRepo)

		res, err := r.ReconcileBookAuthors(ctx, 1, []AuthorRef{
			{Surname: "Иванов", Name: "Иван", Patronymic: "Иванович", Year: yearPtr(1985)},
		})
		require.NoError(t, err)

		assert.Equal(t, 0, res.Matched)
		assert.Equal(t, 1, res.Created)
		require.Len(t, authorRepo.authors, 1)
		assert.Equal(t, "Иванов", authorRepo.authors[0].Surname)
		assert.Equal(t, uint16(1985), *authorRepo.authors[0].Year)
		assert.Equal(t, []uint{1}, bookRepo.replacedIDs)
	})

	t.Run("父称不同视为另一位作者", func(t *testing.T) {
		bookRepo := newFakeBookRepo(book.NewBook("Книга 1", nil))
		authorRepo := newFakeAuthorRepo(author.NewAuthor("Петров", "Петр", "Петрович", nil))
		r := NewReconciler(bookRepo, authorRepo)

		res, err := r.ReconcileBookAuthors(ctx, 1, []AuthorRef{
			{Surname: "Петров", Name: "Петр", Patronymic: ""},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, res.Created)
		assert.Len(t, authorRepo.authors, 2)
	})

	t.Run("多行命中时全部链接", func(t *testing.T) {
		bookRepo := newFakeBookRepo(book.NewBook("Книга 3", nil))
		authorRepo := newFakeAuthorRepo(
			author.NewAuthor("Петров", "Петр", "Петрович", yearPtr(1990)),
			author.NewAuthor("Петров", "Петр", "Петрович", yearPtr(1955)),
		)
		r := NewReconciler(bookRepo, authorRepo)

		res, err := r.ReconcileBookAuthors(ctx, 1, []AuthorRef{
			{Surname: "Петров", Name: "Петр", Patronymic: "Петрович"},
		})
		require.NoError(t, err)

		assert.Equal(t, 2, res.Matched)
		assert.Equal(t, []uint{1, 2}, bookRepo.replacedIDs)
	})

	t.Run("空引用列表不触碰关系", func(t *testing.T) {
		bookRepo := newFakeBookRepo(book.NewBook("Книга 1", nil))
		authorRepo := newFakeAuthorRepo()
		r := NewReconciler(bookRepo, authorRepo)

		res, err := r.ReconcileBookAuthors(ctx, 1, nil)
		require.NoError(t, err)

		assert.Zero(t, res.Matched)
		assert.Zero(t, res.Created)
		assert.Zero(t, bookRepo.replaceCalls, "空列表不应触发关系替换")
	})

	t.Run("重复引用去重后保序", func(t *testing.T) {
		bookRepo := newFakeBookRepo(book.NewBook("Книга 1", nil))
		authorRepo := newFakeAuthorRepo(
			author.NewAuthor("Петров", "Петр", "", nil),
			author.NewAuthor("Иванов", "Иван", "", nil),
		)
		r := NewReconciler(bookRepo, authorRepo)

		_, err := r.ReconcileBookAuthors(ctx, 1, []AuthorRef{
			{Surname: "Петров", Name: "Петр"},
			{Surname: "Иванов", Name: "Иван"},
			{Surname: "Петров", Name: "Петр"},
		})
		require.NoError(t, err)

		assert.Equal(t, []uint{1, 2}, bookRepo.replacedIDs)
	})
}

func TestReconcileAuthorBooks(t *testing.T) {
	ctx := context.Background()

	t.Run("书名与年份都一致才命中", func(t *testing.T) {
		bookRepo := newFakeBookRepo(book.NewBook("Книга 1", yearPtr(2013)))
		authorRepo := newFakeAuthorRepo(author.NewAuthor("Петров", "Петр", "", nil))
		r := NewReconciler(bookRepo, authorRepo)

		res, err := r.ReconcileAuthorBooks(ctx, 1, []BookRef{
			{Title: "Книга 1", Year: yearPtr(2013)},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, res.Matched)
		assert.Len(t, bookRepo.books, 1)
		assert.Equal(t, uint(1), authorRepo.replacedAuthorID)
		assert.Equal(t, []uint{1}, authorRepo.replacedIDs)
	})

	t.Run("同名不同年视为另一本书", func(t *testing.T) {
		bookRepo := newFakeBookRepo(book.NewBook("Книга 1", yearPtr(2013)))
		authorRepo := newFakeAuthorRepo(author.NewAuthor("Петров", "Петр", "", nil))
		r := NewReconciler(bookRepo, authorRepo)

		res, err := r.ReconcileAuthorBooks(ctx, 1, []BookRef{
			{Title: "Книга 1", Year: yearPtr(2014)},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, res.Created)
		assert.Len(t, bookRepo.books, 2)
		assert.Equal(t, []uint{2}, authorRepo.replacedIDs)
	})

	t.Run("年份双方缺省视为相等", func(t *testing.T) {
		bookRepo := newFakeBookRepo(book.NewBook("Книга 2", nil))
		authorRepo := newFakeAuthorRepo(author.NewAuthor("Петров", "Петр", "", nil))
		r := NewReconciler(bookRepo, authorRepo)

		res, err := r.ReconcileAuthorBooks(ctx, 1, []BookRef{
			{Title: "Книга 2", Year: nil},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, res.Matched)
		assert.Len(t, bookRepo.books, 1)
	})

	t.Run("仅一侧缺省年份不命中", func(t *testing.T) {
		bookRepo := newFakeBookRepo(book.NewBook("Книга 2", yearPtr(2020)))
		authorRepo := newFakeAuthorRepo(author.NewAuthor("Петров", "Петр", "", nil))
		r := NewReconciler(bookRepo, authorRepo)

		res, err := r.ReconcileAuthorBooks(ctx, 1, []BookRef{
			{Title: "Книга 2", Year: nil},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, res.Created)
		assert.Len(t, bookRepo.books, 2)
		assert.Nil(t, bookRepo.books[1].Year)
	})

	t.Run("重复执行相同引用结果幂等", func(t *testing.T) {
		bookRepo := newFakeBookRepo()
		authorRepo := newFakeAuthorRepo(author.NewAuthor("Петров", "Петр", "", nil))
		r := NewReconciler(bookRepo, authorRepo)

		refs := []BookRef{{Title: "Книга 1", Year: yearPtr(2013)}}

		res1, err := r.ReconcileAuthorBooks(ctx, 1, refs)
		require.NoError(t, err)
		assert.Equal(t, 1, res1.Created)

		res2, err := r.ReconcileAuthorBooks(ctx, 1, refs)
		require.NoError(t, err)
		assert.Equal(t, 1, res2.Matched)
		assert.Equal(t, 0, res2.Created)
		assert.Len(t, bookRepo.books, 1, "第二次调和不应再新建")
		assert.Equal(t, []uint{1}, authorRepo.replacedIDs)
	})

	t.Run("空引用列表不触碰关系", func(t *testing.T) {
		bookRepo := newFakeBookRepo(book.NewBook("Книга 1", nil))
		authorRepo := newFakeAuthorRepo(author.NewAuthor("Петров", "Петр", "", nil))
		r := NewReconciler(bookRepo, authorRepo)

		res, err := r.ReconcileAuthorBooks(ctx, 1, []BookRef{})
		require.NoError(t, err)

		assert.Zero(t, res.Created)
		assert.Zero(t, authorRepo.replaceCalls)
	})
}

func TestYearEqual(t *testing.T) {
	assert.True(t, yearEqual(nil, nil))
	assert.True(t, yearEqual(yearPtr(2013), yearPtr(2013)))
	assert.False(t, yearEqual(yearPtr(2013), nil))
	assert.False(t, yearEqual(nil, yearPtr(2013)))
	assert.False(t, yearEqual(yearPtr(2013), yearPtr(2014)))
}
