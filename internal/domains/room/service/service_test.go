package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	otelMocks "frontdesk/infras/otel/mocks"
	s3Mocks "frontdesk/infras/s3/mocks"
	roomMocks "frontdesk/internal/domains/room/mocks"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/scope"
	"frontdesk/shared/timezone"
)

func newRoomService(t *testing.T) (service.Room, *roomMocks.MockRoom, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "test-bucket"

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockS3)

	return svc, mockRepo, mockCache, mockS3
}

func availableRoom(id, createdBy string) model.Room {
	return model.Room{
		ID:           id,
		RoomNumber:   "101",
		RoomType:     "DOUBLE",
		Status:       model.StatusAvailable,
		RatePerNight: 150000,
		Active:       true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  createdBy,
			ModifiedBy: createdBy,
		},
	}
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3)
		wantErr   bool
	}{
		{
			name: "successful creation without image",
			req: dto.CreateRoomRequest{
				RoomNumber:   "101",
				RoomType:     "DOUBLE",
				RatePerNight: 150000,
			},
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "successful creation with image",
			req: dto.CreateRoomRequest{
				RoomNumber:   "102",
				RoomType:     "SUITE",
				RatePerNight: 450000,
				Image:        &multipart.FileHeader{Filename: "room.jpg"},
			},
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				s3.EXPECT().
					UploadFile(gomock.Any(), "test-bucket", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/room/abc.jpg", nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "duplicate room number",
			req: dto.CreateRoomRequest{
				RoomNumber:   "101",
				RoomType:     "DOUBLE",
				RatePerNight: 150000,
			},
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "uploaded image cleaned up on insert failure",
			req: dto.CreateRoomRequest{
				RoomNumber:   "103",
				RoomType:     "SINGLE",
				RatePerNight: 90000,
				Image:        &multipart.FileHeader{Filename: "room.png"},
			},
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/room/def.png", nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))

				s3.EXPECT().
					DeleteFile(gomock.Any(), "test-bucket", model.EntityName, gomock.Any()).
					Return(nil)
			},
			wantErr: true,
		},
		{
			name: "upload error",
			req: dto.CreateRoomRequest{
				RoomNumber:   "104",
				RoomType:     "DOUBLE",
				RatePerNight: 150000,
				Image:        &multipart.FileHeader{Filename: "room.jpg"},
			},
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				s3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("s3 error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, mockS3 := newRoomService(t)
			tt.setupMock(mockRepo, mockCache, mockS3)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_CreateBulk(t *testing.T) {
	req := dto.CreateRoomsBulkRequest{
		Rooms: []dto.CreateRoomItem{
			{RoomNumber: "201", RoomType: "DOUBLE", RatePerNight: 150000},
			{RoomNumber: "202", RoomType: "SUITE", RatePerNight: 450000},
		},
	}

	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful bulk creation",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Len(2)).
					Return(nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "one of the room numbers already exists",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				repo.EXPECT().
					InsertBulk(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, _ := newRoomService(t)
			tt.setupMock(mockRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.CreateBulk(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantTotal int
	}{
		{
			name: "cache hit",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Room{availableRoom("test-id", "test-user")}, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name: "count error",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name: "get all error",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, _ := newRoomService(t)
			tt.setupMock(mockRepo, mockCache)

			params := gDto.QueryParams{Page: 1, Limit: 10}
			result, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "test-id",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "test-id",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom("test-id", "test-user"), nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "test-id",
		},
		{
			name: "room not found",
			id:   "nonexistent-id",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   "test-id",
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, _ := newRoomService(t)
			tt.setupMock(mockRepo, mockCache)

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateRoomRequest
		sc        scope.Scope
		setupMock func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateRoomRequest{RoomType: "SUITE"},
			sc:   scope.Unrestricted(),
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom("test-id", "owner-id"), nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "room not found",
			req:  dto.UpdateRoomRequest{RoomType: "SUITE"},
			sc:   scope.Unrestricted(),
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "room owned by another user",
			req:  dto.UpdateRoomRequest{RoomType: "SUITE"},
			sc:   scope.OwnedBy("someone-else"),
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom("test-id", "owner-id"), nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			req:  dto.UpdateRoomRequest{RoomType: "SUITE"},
			sc:   scope.Unrestricted(),
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom("test-id", "owner-id"), nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, _ := newRoomService(t)
			tt.setupMock(mockRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "test-id", tt.sc)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_UpdateStatus(t *testing.T) {
	occupiedRoom := availableRoom("test-id", "owner-id")
	occupiedRoom.Status = model.StatusOccupied

	tests := []struct {
		name         string
		req          dto.UpdateRoomStatusRequest
		sc           scope.Scope
		setupMock    func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache)
		wantErr      bool
		wantConflict bool
	}{
		{
			name: "mark available room for maintenance",
			req:  dto.UpdateRoomStatusRequest{Status: model.StatusMaintenance},
			sc:   scope.Unrestricted(),
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom("test-id", "owner-id"), nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "dirty room back to available",
			req:  dto.UpdateRoomStatusRequest{Status: model.StatusAvailable},
			sc:   scope.OwnedBy("owner-id"),
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				dirty := availableRoom("test-id", "owner-id")
				dirty.Status = model.StatusDirty

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(dirty, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "cannot set occupied by hand",
			req:  dto.UpdateRoomStatusRequest{Status: model.StatusOccupied},
			sc:   scope.Unrestricted(),
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom("test-id", "owner-id"), nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name: "cannot change occupied room by hand",
			req:  dto.UpdateRoomStatusRequest{Status: model.StatusAvailable},
			sc:   scope.Unrestricted(),
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(occupiedRoom, nil)
			},
			wantErr:      true,
			wantConflict: true,
		},
		{
			name: "room owned by another user",
			req:  dto.UpdateRoomStatusRequest{Status: model.StatusMaintenance},
			sc:   scope.OwnedBy("someone-else"),
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom("test-id", "owner-id"), nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, _ := newRoomService(t)
			tt.setupMock(mockRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateStatus(ctx, tt.req, "test-id", tt.sc)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantConflict {
					assert.True(t, failure.IsConflict(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		sc        scope.Scope
		setupMock func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3)
		wantErr   bool
	}{
		{
			name: "successful deletion",
			sc:   scope.Unrestricted(),
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom("test-id", "owner-id"), nil)

				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "deletion removes stored image",
			sc:   scope.Unrestricted(),
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				room := availableRoom("test-id", "owner-id")
				room.Image = "https://cdn.example.com/room/abc.jpg"

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				s3.EXPECT().
					GetObjectNameFromURL("test-bucket", room.Image).
					Return("abc.jpg")

				s3.EXPECT().
					DeleteFile(gomock.Any(), "test-bucket", model.EntityName, "abc.jpg").
					Return(nil)

				cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "room not found",
			sc:   scope.Unrestricted(),
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr: true,
		},
		{
			name: "occupied room cannot be deleted",
			sc:   scope.Unrestricted(),
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				room := availableRoom("test-id", "owner-id")
				room.Status = model.StatusOccupied

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr: true,
		},
		{
			name: "room owned by another user",
			sc:   scope.OwnedBy("someone-else"),
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom("test-id", "owner-id"), nil)
			},
			wantErr: true,
		},
		{
			name: "delete error",
			sc:   scope.Unrestricted(),
			setupMock: func(repo *roomMocks.MockRoom, cache *cacheMocks.MockRedisCache, s3 *s3Mocks.MockS3) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom("test-id", "owner-id"), nil)

				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("delete error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, mockS3 := newRoomService(t)
			tt.setupMock(mockRepo, mockCache, mockS3)

			err := svc.Delete(context.Background(), "test-id", tt.sc)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
