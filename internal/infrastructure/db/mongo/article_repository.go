package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/myjournal/journal-api/internal/core/domain"
	"github.com/myjournal/journal-api/internal/core/ports"
)

const (
	collectionArticles = "articles"
	collectionCounters = "counters"
	articleIDCounter   = "article_id"
)

type ArticleRepository struct {
	col      *mongo.Collection
	counters *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{
		col:      db.Collection(collectionArticles),
		counters: db.Collection(collectionCounters),
	}
}

type articleDoc struct {
	ID              int64     `bson:"_id"`
	Title           string    `bson:"title"`
	Contents        string    `bson:"contents"`
	PublicationDate time.Time `bson:"publication_date"`
	Author          string    `bson:"author"`
}

func toDomain(doc articleDoc) domain.Article {
	return domain.Article{
		ID:              doc.ID,
		Title:           doc.Title,
		Contents:        doc.Contents,
		PublicationDate: doc.PublicationDate.UTC(),
		Author:          doc.Author,
	}
}

// nextID atomically increments the article counter and returns the new
// value. The counter document is created on first use.
func (r *ArticleRepository) nextID(ctx context.Context) (int64, error) {
	res := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": articleIDCounter},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("next article id: %w", err)
	}
	return doc.Seq, nil
}

// Insert assigns the next sequential ID and stores the article.
func (r *ArticleRepository) Insert(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	doc := articleDoc{
		ID:              id,
		Title:           article.Title,
		Contents:        article.Contents,
		PublicationDate: article.PublicationDate.UTC(),
		Author:          article.Author,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}

	created := toDomain(doc)
	return &created, nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id int64) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc articleDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	article := toDomain(doc)
	return &article, nil
}

func (r *ArticleRepository) FindByAuthor(ctx context.Context, author string) ([]domain.Article, error) {
	return r.find(ctx, bson.M{"author": author}, nil)
}

// FindByDate matches articles published on exactly the given calendar day.
// Publication dates are stored truncated to UTC midnight, so equality is
// sufficient.
func (r *ArticleRepository) FindByDate(ctx context.Context, date time.Time) ([]domain.Article, error) {
	return r.find(ctx, bson.M{"publication_date": date.UTC()}, nil)
}

// Paginate returns the slice [offset, offset+limit) in natural _id order.
func (r *ArticleRepository) Paginate(ctx context.Context, offset, limit int64) ([]domain.Article, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(offset).
		SetLimit(limit)
	return r.find(ctx, bson.M{}, opts)
}

func (r *ArticleRepository) FindAll(ctx context.Context) ([]domain.Article, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (r *ArticleRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.col.Find(ctx, filter, opts)
	} else {
		cur, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}
	defer cur.Close(ctx)

	articles := []domain.Article{}
	for cur.Next(ctx) {
		var doc articleDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode article: %w", err)
		}
		articles = append(articles, toDomain(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}

// Update touches title and contents only. Updating a row deleted in the
// meantime matches nothing and is not an error here.
func (r *ArticleRepository) Update(ctx context.Context, id int64, upd ports.ArticleUpdate) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"title": upd.Title, "contents": upd.Contents}},
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

func (r *ArticleRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// EnsureIndexes creates the secondary indexes the filter queries rely on.
func (r *ArticleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "author", Value: 1}}},
		{Keys: bson.D{{Key: "publication_date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
