// Package services implements the authenticity gateway: image
// classification, verdict routing, dual-sided persistence and the read-side
// feed and statistics queries. All operations are synchronous and keep no
// in-process state between calls.
package services

import (
	"context"
	"fmt"

	"github.com/verifeed/verifeed/internal/classifier"
	"github.com/verifeed/verifeed/internal/common"
	"github.com/verifeed/verifeed/internal/imaging"
	"github.com/verifeed/verifeed/internal/logging"
	"github.com/verifeed/verifeed/internal/server/blob"
	"github.com/verifeed/verifeed/internal/server/models"
	"github.com/verifeed/verifeed/internal/server/repositories/identities"
	"github.com/verifeed/verifeed/internal/server/repositories/posts"
	"github.com/verifeed/verifeed/internal/server/repositories/quarantine"
)

// Gateway routes every uploaded image through the classifier and branches
// persistence on the verdict. All collaborators are injected, so tests can
// substitute fakes for the stores and the model.
type Gateway struct {
	log        logging.Logger
	classifier classifier.Classifier
	blobs      blob.Store
	identities identities.Repository
	quarantine quarantine.Repository
	posts      posts.Repository

	profileBucket string
	postsBucket   string
}

func NewGateway(
	log logging.Logger,
	clf classifier.Classifier,
	blobs blob.Store,
	identityRepo identities.Repository,
	quarantineRepo quarantine.Repository,
	postRepo posts.Repository,
	profileBucket, postsBucket string,
) *Gateway {
	return &Gateway{
		log:           log.With("module", "gateway"),
		classifier:    clf,
		blobs:         blobs,
		identities:    identityRepo,
		quarantine:    quarantineRepo,
		posts:         postRepo,
		profileBucket: profileBucket,
		postsBucket:   postsBucket,
	}
}

// classifyUpload runs the shared decode, normalize and score pipeline.
// It returns the verdict together with the PNG re-encoding of the upload,
// which is what gets written to the blob store on the accept path.
func (g *Gateway) classifyUpload(ctx context.Context, imageBytes []byte) (Verdict, []byte, error) {
	img, err := imaging.Decode(imageBytes)
	if err != nil {
		return 0, nil, err
	}

	score, err := g.classifier.Predict(ctx, imaging.Normalize(img))
	if err != nil {
		return 0, nil, err
	}

	encoded, err := imaging.EncodePNG(img)
	if err != nil {
		return 0, nil, fmt.Errorf("encode png: %w", err)
	}

	return VerdictFromScore(score), encoded, nil
}

// Register classifies the submitted display image and either promotes the
// identity or quarantines the attempt. A fake verdict never writes the
// image: the attempt is recorded for audit and the caller gets
// ErrRejectedAsFake.
func (g *Gateway) Register(ctx context.Context, username, email, password string, image []byte, filename string) (*models.Identity, error) {
	verdict, encoded, err := g.classifyUpload(ctx, image)
	if err != nil {
		return nil, err
	}

	if !verdict.Genuine() {
		attempt := &models.QuarantinedAttempt{
			Username: username,
			Email:    email,
			Password: password,
		}
		attempt.Stamp()
		if err := g.quarantine.Put(ctx, attempt); err != nil {
			return nil, err
		}
		g.log.Warn(ctx, "registration rejected", "username", username)
		return nil, common.ErrRejectedAsFake
	}

	key := blob.ProfileImageKey(email, filename)
	url, err := g.blobs.Put(ctx, g.profileBucket, key, encoded, "image/png")
	if err != nil {
		return nil, err
	}

	identity := &models.Identity{
		Username:        username,
		Email:           email,
		Password:        password,
		ProfileImageURL: url,
	}
	identity.Stamp()
	if err := g.identities.Put(ctx, identity); err != nil {
		return nil, err
	}

	g.log.Info(ctx, "identity registered", "id", identity.ID, "username", username)
	return identity, nil
}

// Login checks a username/password pair against stored identities. Account
// names are unique by convention only; the first match in scan order wins.
//
// Credentials are stored and compared verbatim. That mirrors the rows this
// service inherited and is a known defect: fixing it means hashing on write
// and migrating existing records.
func (g *Gateway) Login(ctx context.Context, username, password string) (*models.Identity, error) {
	matches, err := g.identities.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, common.ErrInvalidCredentials
	}

	identity := matches[0]
	if identity.Password != password {
		return nil, common.ErrInvalidCredentials
	}

	return identity, nil
}

// CreatePost publishes a post regardless of the image verdict: a fake
// classification only clears the stored status flag, it never blocks
// persistence.
func (g *Gateway) CreatePost(ctx context.Context, identityID, content string, image []byte, filename string) (*models.Post, error) {
	verdict, encoded, err := g.classifyUpload(ctx, image)
	if err != nil {
		return nil, err
	}

	key := blob.PostImageKey(identityID, filename)
	url, err := g.blobs.Put(ctx, g.postsBucket, key, encoded, "image/png")
	if err != nil {
		return nil, err
	}

	genuine := verdict.Genuine()
	post := &models.Post{
		IdentityID: identityID,
		Content:    content,
		ImageURL:   url,
		Status:     &genuine,
	}
	post.Stamp()
	if err := g.posts.Put(ctx, post); err != nil {
		return nil, err
	}

	g.log.Info(ctx, "post created", "id", post.ID, "identity", identityID, "verdict", verdict.String())
	return post, nil
}
