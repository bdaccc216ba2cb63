// Package catalog 实现图书与作者之间的"找到即链接、找不到即创建"调和引擎
//
// 设计说明:
// 1. 嵌套写入携带的是自然键而不是ID：图书为(书名, 年份)，作者为(姓, 名, 父称)
// 2. 匹配逻辑是纯函数，仓储只提供弱键(书名/姓)命中的候选快照，
//    年份的NULL=NULL语义与其余字段的精确比较都在内存里完成
// 3. 自然键不唯一：一个引用可以命中多行，全部命中行都会被链接
// 4. 空引用列表视为"未给出指令"，不清空已有关系
package catalog

import (
	"context"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
)

// BookRef 嵌套写入中图书的自然键引用
type BookRef struct {
	Title string
	Year  *uint16
}

// AuthorRef 嵌套写入中作者的自然键引用
// Year不参与匹配：命中已有作者时保留库中年份，仅在新建时写入
type AuthorRef struct {
	Surname    string
	Name       string
	Patronymic string
	Year       *uint16
}

// Result 一次调和的统计结果
type Result struct {
	Matched int // 链接到已有行的引用命中数
	Created int // 因无命中而新建的行数
}

// yearEqual 年份相等判定，两侧都缺省(nil)视为相等
func yearEqual(a, b *uint16) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// matchBooks 在候选快照中找出与引用自然键完全一致的图书
// 返回全部命中行，顺序与候选一致
func matchBooks(candidates []*book.Book, ref BookRef) []*book.Book {
	var hits []*book.Book
	for _, c := range candidates {
		if c.Title == ref.Title && yearEqual(c.Year, ref.Year) {
			hits = append(hits, c)
		}
	}
	return hits
}

// matchAuthors 在候选快照中找出(姓, 名, 父称)完全一致的作者
// 出生年份刻意不参与比较
func matchAuthors(candidates []*author.Author, ref AuthorRef) []*author.Author {
	var hits []*author.Author
	for _, c := range candidates {
		if c.Surname == ref.Surname && c.Name == ref.Name && c.Patronymic == ref.Patronymic {
			hits = append(hits, c)
		}
	}
	return hits
}

// Reconciler 调和引擎
// 依赖两侧仓储：查询候选、新建实体、整体替换关系集合
type Reconciler struct {
	bookRepo   book.Repository
	authorRepo author.Repository
}

// NewReconciler 创建调和引擎
func NewReconciler(bookRepo book.Repository, authorRepo author.Repository) *Reconciler {
	return &Reconciler{
		bookRepo:   bookRepo,
		authorRepo: authorRepo,
	}
}

// ReconcileBookAuthors 按作者引用列表调和某本图书的作者关系
//
// 业务规则:
// 1. refs为空时不做任何改动（保留既有关系）
// 2. 每个引用先查候选再精确匹配：命中则链接全部命中行，
//    未命中则新建一位作者（此时才写入引用携带的年份）
// 3. 调和结果整体替换该图书的作者集合，重复命中去重后保序
func (r *Reconciler) ReconcileBookAuthors(ctx context.Context, bookID uint, refs []AuthorRef) (Result, error) {
	var res Result
	if len(refs) == 0 {
		return res, nil
	}

	var ids []uint
	for _, ref := range refs {
		candidates, err := r.authorRepo.FindBySurname(ctx, ref.Surname)
		if err != nil {
			return res, err
		}

		hits := matchAuthors(candidates, ref)
		if len(hits) == 0 {
			a := author.NewAuthor(ref.Surname, ref.Name, ref.Patronymic, ref.Year)
			if err := r.authorRepo.Create(ctx, a); err != nil {
				return res, err
			}
			ids = append(ids, a.ID)
			res.Created++
			continue
		}
		for _, h := range hits {
			ids = append(ids, h.ID)
		}
		res.Matched += len(hits)
	}

	if err := r.bookRepo.ReplaceAuthors(ctx, bookID, dedupe(ids)); err != nil {
		return res, err
	}
	return res, nil
}

// ReconcileAuthorBooks 按图书引用列表调和某位作者的图书关系
// 规则与ReconcileBookAuthors对称，图书按(书名, 年份)匹配
func (r *Reconciler) ReconcileAuthorBooks(ctx context.Context, authorID uint, refs []BookRef) (Result, error) {
	var res Result
	if len(refs) == 0 {
		return res, nil
	}

	var ids []uint
	for _, ref := range refs {
		candidates, err := r.bookRepo.FindByTitle(ctx, ref.Title)
		if err != nil {
			return res, err
		}

		hits := matchBooks(candidates, ref)
		if len(hits) == 0 {
			b := book.NewBook(ref.Title, ref.Year)
			if err := r.bookRepo.Create(ctx, b); err != nil {
				return res, err
			}
			ids = append(ids, b.ID)
			res.Created++
			continue
		}
		for _, h := range hits {
			ids = append(ids, h.ID)
		}
		res.Matched += len(hits)
	}

	if err := r.authorRepo.ReplaceBooks(ctx, authorID, dedupe(ids)); err != nil {
		return res, err
	}
	return res, nil
}

// dedupe ID去重，保留首次出现顺序
// 多个引用命中同一行时避免向多对多表重复写入同一组合
func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
