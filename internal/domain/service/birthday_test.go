package service

import (
	"context"
	"testing"

	"github.com/diegoclair/slack-birthday-bot/internal/domain"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/contract"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/entity"
	"github.com/diegoclair/slack-birthday-bot/internal/domain/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testUsers() (alice, bob *entity.User) {
	alice = &entity.User{ID: 1, SlackUserID: "U1", Name: "alice", DateOfBirth: "1.3.1990"}
	bob = &entity.User{ID: 2, SlackUserID: "U2", Name: "bob", DateOfBirth: "15.6.1985", DateOfFwd: "15.6.2020"}
	return
}

func Test_birthdayService_EnsureUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		buildMock func(mocks allMocks)
		wantName  string
		wantErr   bool
	}{
		{
			name: "Should return known user untouched",
			buildMock: func(mocks allMocks) {
				mocks.mockUserRepo.EXPECT().
					GetBySlackID("U1").
					Return(&entity.User{ID: 1, SlackUserID: "U1", Name: "alice"}, nil).Times(1)
			},
			wantName: "alice",
		},
		{
			name: "Should register unknown user",
			buildMock: func(mocks allMocks) {
				gomock.InOrder(
					mocks.mockUserRepo.EXPECT().GetBySlackID("U1").Return(nil, nil).Times(1),
					mocks.mockUserRepo.EXPECT().
						Upsert(gomock.Any()).
						DoAndReturn(func(user *entity.User) error {
							require.Equal(t, "U1", user.SlackUserID)
							require.Equal(t, "alice", user.Name)
							user.ID = 1
							return nil
						}).Times(1),
				)
			},
			wantName: "alice",
		},
		{
			name: "Should refresh a renamed user",
			buildMock: func(mocks allMocks) {
				mocks.mockUserRepo.EXPECT().
					GetBySlackID("U1").
					Return(&entity.User{ID: 1, SlackUserID: "U1", Name: "alice.old", DateOfBirth: "1.3.1990"}, nil).Times(1)
				mocks.mockUserRepo.EXPECT().
					Upsert(gomock.Any()).
					DoAndReturn(func(user *entity.User) error {
						require.Equal(t, "1.3.1990", user.DateOfBirth)
						return nil
					}).Times(1)
			},
			wantName: "alice",
		},
		{
			name: "Should return error when lookup fails",
			buildMock: func(mocks allMocks) {
				mocks.mockUserRepo.EXPECT().GetBySlackID("U1").Return(nil, assert.AnError).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			s := newBirthday(m.mockDataManager, m.mockDirectory, m.clock)
			user, err := s.EnsureUser(ctx, "U1", "alice")

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, user.Name)
		})
	}
}

func Test_birthdayService_SetDate(t *testing.T) {
	ctx := context.Background()

	type args struct {
		callerID string
		kind     event.Kind
		target   string
		rawDate  string
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(mocks allMocks, args args)
		wantUser  string
		check     func(t *testing.T, err error)
	}{
		{
			name: "Should let users set their own birthday",
			args: args{callerID: "U1", kind: event.Birthday, target: "me", rawDate: "15.06.1990"},
			buildMock: func(mocks allMocks, args args) {
				alice, _ := testUsers()
				mocks.mockUserRepo.EXPECT().GetBySlackID("U1").Return(alice, nil).Times(1)
				mocks.mockUserRepo.EXPECT().SetDateOfBirth(int64(1), "15.06.1990").Return(nil).Times(1)
			},
			wantUser: "alice",
		},
		{
			name: "Should let privileged callers set someone else's anniversary",
			args: args{callerID: "U1", kind: event.WorkAnniversary, target: "@bob", rawDate: "1.9.2019"},
			buildMock: func(mocks allMocks, args args) {
				_, bob := testUsers()
				mocks.mockUserRepo.EXPECT().GetByName("bob").Return(bob, nil).Times(1)
				mocks.mockDirectory.EXPECT().IsPrivileged(ctx, "U1").Return(true, nil).Times(1)
				mocks.mockUserRepo.EXPECT().SetDateOfFwd(int64(2), "1.9.2019").Return(nil).Times(1)
			},
			wantUser: "bob",
		},
		{
			name: "Should resolve escaped mentions by slack id",
			args: args{callerID: "U2", kind: event.Birthday, target: "<@U2|bob>", rawDate: "15.6.1985"},
			buildMock: func(mocks allMocks, args args) {
				_, bob := testUsers()
				mocks.mockUserRepo.EXPECT().GetBySlackID("U2").Return(bob, nil).Times(1)
				mocks.mockUserRepo.EXPECT().SetDateOfBirth(int64(2), "15.6.1985").Return(nil).Times(1)
			},
			wantUser: "bob",
		},
		{
			name: "Should deny regular members editing others",
			args: args{callerID: "U1", kind: event.Birthday, target: "<@U2>", rawDate: "15.6.1985"},
			buildMock: func(mocks allMocks, args args) {
				_, bob := testUsers()
				mocks.mockUserRepo.EXPECT().GetBySlackID("U2").Return(bob, nil).Times(1)
				mocks.mockDirectory.EXPECT().IsPrivileged(ctx, "U1").Return(false, nil).Times(1)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrPermissionDenied)
			},
		},
		{
			name: "Should deny when the directory cannot answer",
			args: args{callerID: "U1", kind: event.Birthday, target: "bob", rawDate: "15.6.1985"},
			buildMock: func(mocks allMocks, args args) {
				_, bob := testUsers()
				mocks.mockUserRepo.EXPECT().GetByName("bob").Return(nil, nil).Times(1)
				mocks.mockUserRepo.EXPECT().FindByFuzzyName("bob").Return([]*entity.User{bob}, nil).Times(1)
				mocks.mockDirectory.EXPECT().IsPrivileged(ctx, "U1").Return(false, assert.AnError).Times(1)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrPermissionDenied)
			},
		},
		{
			name: "Should list candidates of an ambiguous name",
			args: args{callerID: "U1", kind: event.Birthday, target: "al", rawDate: "1.1.2000"},
			buildMock: func(mocks allMocks, args args) {
				alice, _ := testUsers()
				alan := &entity.User{ID: 3, SlackUserID: "U3", Name: "alan"}
				mocks.mockUserRepo.EXPECT().GetByName("al").Return(nil, nil).Times(1)
				mocks.mockUserRepo.EXPECT().FindByFuzzyName("al").Return([]*entity.User{alice, alan}, nil).Times(1)
			},
			check: func(t *testing.T, err error) {
				var ambiguous *domain.AmbiguousUserError
				require.ErrorAs(t, err, &ambiguous)
				assert.Equal(t, []string{"alice", "alan"}, ambiguous.Names)
			},
		},
		{
			name: "Should report unknown names",
			args: args{callerID: "U1", kind: event.Birthday, target: "zed", rawDate: "1.1.2000"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockUserRepo.EXPECT().GetByName("zed").Return(nil, nil).Times(1)
				mocks.mockUserRepo.EXPECT().FindByFuzzyName("zed").Return(nil, nil).Times(1)
			},
			check: func(t *testing.T, err error) {
				var notFound *domain.UserNotFoundError
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, "zed", notFound.Query)
				assert.ErrorIs(t, err, domain.ErrUserNotFound)
			},
		},
		{
			name: "Should reject impossible dates",
			args: args{callerID: "U1", kind: event.Birthday, target: "me", rawDate: "30.2.2001"},
			buildMock: func(mocks allMocks, args args) {
				alice, _ := testUsers()
				mocks.mockUserRepo.EXPECT().GetBySlackID("U1").Return(alice, nil).Times(1)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidDate)
			},
		},
		{
			name: "Should return error when saving fails",
			args: args{callerID: "U1", kind: event.Birthday, target: "me", rawDate: "1.3.1990"},
			buildMock: func(mocks allMocks, args args) {
				alice, _ := testUsers()
				mocks.mockUserRepo.EXPECT().GetBySlackID("U1").Return(alice, nil).Times(1)
				mocks.mockUserRepo.EXPECT().SetDateOfBirth(int64(1), "1.3.1990").Return(assert.AnError).Times(1)
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m, tt.args)

			s := newBirthday(m.mockDataManager, m.mockDirectory, m.clock)
			user, err := s.SetDate(ctx, tt.args.callerID, tt.args.kind, tt.args.target, tt.args.rawDate)

			if tt.check != nil {
				tt.check(t, err)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, user.Name)
			assert.Equal(t, tt.args.rawDate, tt.args.kind.Value(user))
		})
	}
}

func Test_birthdayService_DeleteDate(t *testing.T) {
	ctx := context.Background()

	t.Run("Should clear the date", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		alice, _ := testUsers()
		m.mockUserRepo.EXPECT().GetBySlackID("U1").Return(alice, nil).Times(1)
		m.mockUserRepo.EXPECT().SetDateOfBirth(int64(1), "").Return(nil).Times(1)

		s := newBirthday(m.mockDataManager, m.mockDirectory, m.clock)
		user, err := s.DeleteDate(ctx, "U1", event.Birthday, "me")

		require.NoError(t, err)
		assert.Empty(t, user.DateOfBirth)
	})

	t.Run("Should report a missing date", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		alice, _ := testUsers()
		m.mockUserRepo.EXPECT().GetBySlackID("U1").Return(alice, nil).Times(1)

		s := newBirthday(m.mockDataManager, m.mockDirectory, m.clock)
		user, err := s.DeleteDate(ctx, "U1", event.WorkAnniversary, "me")

		assert.ErrorIs(t, err, domain.ErrNoDateSpecified)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Name)
	})

	t.Run("Should check permissions before anything else", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		_, bob := testUsers()
		m.mockUserRepo.EXPECT().GetByName("bob").Return(bob, nil).Times(1)
		m.mockDirectory.EXPECT().IsPrivileged(ctx, "U1").Return(false, nil).Times(1)

		s := newBirthday(m.mockDataManager, m.mockDirectory, m.clock)
		_, err := s.DeleteDate(ctx, "U1", event.Birthday, "bob")

		assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	})
}

func Test_birthdayService_UsersOn(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		rawDate   string
		buildMock func(mocks allMocks)
		want      []string
		wantErr   error
	}{
		{
			name:    "Should find birthdays on a day of any year",
			rawDate: "15.6.2000",
			buildMock: func(mocks allMocks) {
				alice, bob := testUsers()
				mocks.mockDirectory.EXPECT().IsPrivileged(ctx, "U1").Return(true, nil).Times(1)
				mocks.mockUserRepo.EXPECT().List().Return([]*entity.User{alice, bob}, nil).Times(1)
			},
			want: []string{"bob"},
		},
		{
			name:    "Should return nothing for a quiet day",
			rawDate: "2.2.2000",
			buildMock: func(mocks allMocks) {
				alice, bob := testUsers()
				mocks.mockDirectory.EXPECT().IsPrivileged(ctx, "U1").Return(true, nil).Times(1)
				mocks.mockUserRepo.EXPECT().List().Return([]*entity.User{alice, bob}, nil).Times(1)
			},
		},
		{
			name:    "Should deny regular members",
			rawDate: "15.6.2000",
			buildMock: func(mocks allMocks) {
				mocks.mockDirectory.EXPECT().IsPrivileged(ctx, "U1").Return(false, nil).Times(1)
			},
			wantErr: domain.ErrPermissionDenied,
		},
		{
			name:    "Should reject malformed dates",
			rawDate: "15/06/2000",
			buildMock: func(mocks allMocks) {
				mocks.mockDirectory.EXPECT().IsPrivileged(ctx, "U1").Return(true, nil).Times(1)
			},
			wantErr: domain.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			s := newBirthday(m.mockDataManager, m.mockDirectory, m.clock)
			users, err := s.UsersOn(ctx, "U1", event.Birthday, tt.rawDate)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			var names []string
			for _, u := range users {
				names = append(names, u.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func Test_birthdayService_List(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	alice, bob := testUsers()
	carol := &entity.User{ID: 3, SlackUserID: "U3", Name: "carol", DateOfBirth: "8.6.1999"}
	dave := &entity.User{ID: 4, SlackUserID: "U4", Name: "dave"}

	m.mockUserRepo.EXPECT().List().Return([]*entity.User{alice, bob, carol, dave}, nil).Times(1)

	s := newBirthday(m.mockDataManager, m.mockDirectory, m.clock)
	entries, err := s.List(context.Background(), event.Birthday)

	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.User.Name)
	}
	assert.Equal(t, []string{"bob", "alice", "carol"}, names)
}

func Test_birthdayService_RecordPitchingIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Should save the answer and return the tally", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		alice, _ := testUsers()
		channel := &entity.BirthdayChannel{ID: 7, UserID: alice.ID, RoomID: "G1"}

		gomock.InOrder(
			m.mockChannelRepo.EXPECT().GetByRoomID("G1").Return(channel, nil).Times(1),
			m.mockDataManager.EXPECT().
				WithTransaction(ctx, gomock.Any()).
				DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
					return fn(m.mockDataManager)
				}).Times(1),
			m.mockPitchingInRepo.EXPECT().
				Save(gomock.Any()).
				DoAndReturn(func(response *entity.PitchingInResponse) error {
					require.Equal(t, int64(7), response.ChannelID)
					require.Equal(t, "U2", response.SlackUserID)
					require.True(t, response.Answer)
					return nil
				}).Times(1),
			m.mockPitchingInRepo.EXPECT().ListByChannel(int64(7)).Return([]*entity.PitchingInResponse{
				{SlackUserID: "U2", Answer: true},
				{SlackUserID: "U3", Answer: false},
				{SlackUserID: "U4", Answer: true},
			}, nil).Times(1),
			m.mockUserRepo.EXPECT().GetByID(alice.ID).Return(alice, nil).Times(1),
		)

		s := newBirthday(m.mockDataManager, m.mockDirectory, m.clock)
		tally, err := s.RecordPitchingIn(ctx, "G1", "U2", true)

		require.NoError(t, err)
		assert.Equal(t, &entity.PitchingInTally{Owner: alice, Yes: 2, No: 1}, tally)
	})

	t.Run("Should refuse rooms that are not birthday channels", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockChannelRepo.EXPECT().GetByRoomID("C1").Return(nil, nil).Times(1)

		s := newBirthday(m.mockDataManager, m.mockDirectory, m.clock)
		_, err := s.RecordPitchingIn(ctx, "C1", "U2", true)

		assert.ErrorIs(t, err, domain.ErrNotBirthdayChannel)
	})

	t.Run("Should return error when the transaction fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockChannelRepo.EXPECT().GetByRoomID("G1").Return(&entity.BirthdayChannel{ID: 7}, nil).Times(1)
		m.mockDataManager.EXPECT().WithTransaction(ctx, gomock.Any()).Return(assert.AnError).Times(1)

		s := newBirthday(m.mockDataManager, m.mockDirectory, m.clock)
		tally, err := s.RecordPitchingIn(ctx, "G1", "U2", false)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, tally)
	})
}

func Test_birthdayService_SyncRoster(t *testing.T) {
	ctx := context.Background()

	t.Run("Should upsert every member", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockDirectory.EXPECT().ListMembers(ctx).Return([]entity.Member{
			{SlackUserID: "U1", Name: "alice", DisplayName: "Alice"},
			{SlackUserID: "U2", Name: "bob"},
		}, nil).Times(1)
		m.mockDataManager.EXPECT().
			WithTransaction(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(contract.DataManager) error) error {
				return fn(m.mockDataManager)
			}).Times(1)

		var synced []string
		m.mockUserRepo.EXPECT().
			Upsert(gomock.Any()).
			DoAndReturn(func(user *entity.User) error {
				synced = append(synced, user.SlackUserID)
				return nil
			}).Times(2)

		s := newBirthday(m.mockDataManager, m.mockDirectory, m.clock)
		err := s.SyncRoster(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"U1", "U2"}, synced)
	})

	t.Run("Should return error when the directory fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockDirectory.EXPECT().ListMembers(ctx).Return(nil, assert.AnError).Times(1)

		s := newBirthday(m.mockDataManager, m.mockDirectory, m.clock)

		assert.ErrorIs(t, s.SyncRoster(ctx), assert.AnError)
	})
}
